package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tests

func TestIncrement(t *testing.T) {
	c := InitCounter()
	for i := int64(1); i <= 3; i++ {
		count, err := c.Increment(context.Background(), "quota:203.0.113.7", time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, i, count)
	}
}

func TestIncrement_SeparateKeys(t *testing.T) {
	c := InitCounter()
	count, err := c.Increment(context.Background(), "quota:203.0.113.7", time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	count, err = c.Increment(context.Background(), "quota:198.51.100.9", time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIncrement_WindowExpiry(t *testing.T) {
	c := InitCounter()
	count, err := c.Increment(context.Background(), "quota:203.0.113.7", time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	count, err = c.Increment(context.Background(), "quota:203.0.113.7", time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	time.Sleep(5 * time.Millisecond)
	count, err = c.Increment(context.Background(), "quota:203.0.113.7", time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
