package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	serviceErrors "github.com/Igbinosa-Christian/scissorapp/internal/service/errors"
	storageErrors "github.com/Igbinosa-Christian/scissorapp/internal/storage/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage/inmemory"
)

// Tests

func TestInitIdentity(t *testing.T) {
	_, err := InitIdentity(nil, zap.NewNop())
	assert.Equal(t, "nil storage was passed to service initializer", err.Error())
}

func TestRegister(t *testing.T) {
	s := inmemory.InitStorage(zap.NewNop())
	processor, _ := InitIdentity(s, zap.NewNop())
	user, err := processor.Register(context.Background(), "alice", "alice@example.com", "sup3r-secret")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.ID)
	// the stored hash must not be the plaintext password
	entry, _ := s.GetUserByUsername(context.Background(), "alice")
	assert.NotEqual(t, "sup3r-secret", entry.PasswordHash)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s := inmemory.InitStorage(zap.NewNop())
	processor, _ := InitIdentity(s, zap.NewNop())
	_, err := processor.Register(context.Background(), "alice", "alice@example.com", "sup3r-secret")
	assert.NoError(t, err)
	_, err = processor.Register(context.Background(), "alice", "other@example.com", "sup3r-secret")
	var dupUsername *storageErrors.DuplicateUsernameError
	assert.ErrorAs(t, err, &dupUsername)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := inmemory.InitStorage(zap.NewNop())
	processor, _ := InitIdentity(s, zap.NewNop())
	_, err := processor.Register(context.Background(), "alice", "alice@example.com", "sup3r-secret")
	assert.NoError(t, err)
	_, err = processor.Register(context.Background(), "bob", "alice@example.com", "sup3r-secret")
	var dupEmail *storageErrors.DuplicateEmailError
	assert.ErrorAs(t, err, &dupEmail)
}

func TestAuthenticate(t *testing.T) {
	s := inmemory.InitStorage(zap.NewNop())
	processor, _ := InitIdentity(s, zap.NewNop())
	_, err := processor.Register(context.Background(), "alice", "alice@example.com", "sup3r-secret")
	assert.NoError(t, err)
	user, err := processor.Authenticate(context.Background(), "alice", "sup3r-secret")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	s := inmemory.InitStorage(zap.NewNop())
	processor, _ := InitIdentity(s, zap.NewNop())
	_, err := processor.Register(context.Background(), "alice", "alice@example.com", "sup3r-secret")
	assert.NoError(t, err)
	_, err = processor.Authenticate(context.Background(), "alice", "wrong-password")
	var invalidCreds *serviceErrors.InvalidCredentialsError
	assert.ErrorAs(t, err, &invalidCreds)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	s := inmemory.InitStorage(zap.NewNop())
	processor, _ := InitIdentity(s, zap.NewNop())
	_, err := processor.Authenticate(context.Background(), "nobody", "sup3r-secret")
	var invalidCreds *serviceErrors.InvalidCredentialsError
	assert.ErrorAs(t, err, &invalidCreds)
}
