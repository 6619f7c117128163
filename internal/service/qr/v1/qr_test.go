package qr

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Tests

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	generator, err := InitGenerator(dir, zap.NewNop())
	assert.NoError(t, err)

	imgName, err := generator.Generate("http://localhost:8080/ab0De")
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}\.png$`), imgName)

	png, err := os.ReadFile(filepath.Join(dir, imgName))
	assert.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])
}

func TestGenerate_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	generator, err := InitGenerator(dir, zap.NewNop())
	assert.NoError(t, err)

	first, err := generator.Generate("http://localhost:8080/ab0De")
	assert.NoError(t, err)
	second, err := generator.Generate("http://localhost:8080/ab0De")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestInitGenerator_CreatesUploadPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "static")
	_, err := InitGenerator(dir, zap.NewNop())
	assert.NoError(t, err)
	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
