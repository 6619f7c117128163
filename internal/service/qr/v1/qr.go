// Package qr provides functionality for generating scannable QR artifacts for short URLs.
package qr

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	serviceErrors "github.com/Igbinosa-Christian/scissorapp/internal/service/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/qr"
)

// Check interface implementation explicitly
var (
	_ qr.Generator = (*Generator)(nil)
)

const imageSize = 256

// Generator struct defines data structure handling and provides support for adding new implementations.
type Generator struct {
	log        *zap.Logger
	uploadPath string
}

// InitGenerator initializes a Generator object and ensures the upload path exists.
func InitGenerator(uploadPath string, logger *zap.Logger) (*Generator, error) {
	if err := os.MkdirAll(uploadPath, 0o755); err != nil {
		return nil, err
	}
	return &Generator{
		log:        logger,
		uploadPath: uploadPath,
	}, nil
}

// Generate encodes the reachable short URL into a PNG stored under an opaque 16-hex filename.
func (g *Generator) Generate(reachableURL string) (string, error) {
	png, err := qrcode.Encode(reachableURL, qrcode.Medium, imageSize)
	if err != nil {
		return "", &serviceErrors.QRGenerationError{Err: err}
	}
	imgName, err := randomImageName()
	if err != nil {
		return "", &serviceErrors.QRGenerationError{Err: err}
	}
	if err := os.WriteFile(filepath.Join(g.uploadPath, imgName), png, 0o644); err != nil {
		return "", &serviceErrors.QRGenerationError{Err: err}
	}
	g.log.Info("Generated QR artifact", zap.String("imgName", imgName))
	return imgName, nil
}

// randomImageName returns an opaque filename so nothing semantic leaks through artifact names.
func randomImageName() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + ".png", nil
}
