// Package shortener provides functionality for creating and resolving short links.
package shortener

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"net/url"
	"strings"

	"go.uber.org/zap"

	serviceErrors "github.com/Igbinosa-Christian/scissorapp/internal/service/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/modellink"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/qr"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/shortener"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage"
	storageErrors "github.com/Igbinosa-Christian/scissorapp/internal/storage/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ shortener.Processor = (*Shortener)(nil)
)

const (
	codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength   = 5
	// collision probability at 62^5 keys is negligible, the cap only guards
	// against a pathological retry loop on a saturated namespace
	maxCodeAttempts = 100
)

// Shortener struct defines data structure handling and provides support for adding new implementations.
type Shortener struct {
	log         *zap.Logger
	baseURL     string
	qrGenerator qr.Generator
	LinkStorage storage.LinkStorage
}

// InitShortener initializes a Shortener object and sets its attributes.
func InitShortener(s storage.LinkStorage, qrGenerator qr.Generator, baseURL string, logger *zap.Logger) (*Shortener, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Shortener{
		log:         logger,
		baseURL:     strings.TrimRight(baseURL, "/"),
		qrGenerator: qrGenerator,
		LinkStorage: s,
	}, nil
}

// CreateLink registers a new short link for an owner, or returns the existing one for a repeated URL.
func (short *Shortener) CreateLink(ctx context.Context, owner string, originalURL string, customAlias string) (modellink.Link, error) {
	if _, err := url.ParseRequestURI(originalURL); err != nil {
		return modellink.Link{}, &serviceErrors.ServiceIncorrectInputURL{Msg: err.Error()}
	}
	// the alias collision check runs before the dedup check, matching form validation order
	if customAlias != "" {
		shortURL := owner + "." + customAlias
		if _, err := short.LinkStorage.GetLinkByShortURL(ctx, shortURL); err == nil {
			return modellink.Link{}, &serviceErrors.DuplicateAliasError{ShortURL: shortURL}
		}
	}
	// repeated shortening of the same URL by the same owner is idempotent
	existing, err := short.LinkStorage.GetLinkByOwnerAndURL(ctx, owner, originalURL)
	if err == nil {
		return toModel(existing), nil
	}
	var notFound *storageErrors.LinkNotFoundError
	if !errors.As(err, &notFound) {
		return modellink.Link{}, err
	}
	if customAlias != "" {
		return short.createWithAlias(ctx, owner, originalURL, customAlias)
	}
	return short.createWithRandomCode(ctx, owner, originalURL)
}

// Resolve returns the link registered under the given short URL.
func (short *Shortener) Resolve(ctx context.Context, shortURL string) (modellink.Link, error) {
	entry, err := short.LinkStorage.GetLinkByShortURL(ctx, shortURL)
	if err != nil {
		return modellink.Link{}, err
	}
	return toModel(entry), nil
}

// GetByID returns the link registered under the given ID.
func (short *Shortener) GetByID(ctx context.Context, id int64) (modellink.Link, error) {
	entry, err := short.LinkStorage.GetLinkByID(ctx, id)
	if err != nil {
		return modellink.Link{}, err
	}
	return toModel(entry), nil
}

// Delete removes a link and its visit rows after verifying the requester owns it.
func (short *Shortener) Delete(ctx context.Context, requester string, id int64) error {
	entry, err := short.LinkStorage.GetLinkByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.Owner != requester {
		return &serviceErrors.NotOwnerError{Requester: requester, Owner: entry.Owner}
	}
	return short.LinkStorage.DeleteLink(ctx, id)
}

// History returns all links registered by one owner.
func (short *Shortener) History(ctx context.Context, owner string) ([]modellink.Link, error) {
	entries, err := short.LinkStorage.GetLinksByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	links := make([]modellink.Link, len(entries))
	for i, entry := range entries {
		links[i] = toModel(entry)
	}
	return links, nil
}

// createWithAlias namespaces the alias by owner and validates it against the full short URL namespace.
func (short *Shortener) createWithAlias(ctx context.Context, owner string, originalURL string, customAlias string) (modellink.Link, error) {
	shortURL := owner + "." + customAlias
	entry, err := short.persist(ctx, owner, originalURL, shortURL)
	if err != nil {
		var exists *storageErrors.AlreadyExistsError
		if errors.As(err, &exists) {
			return modellink.Link{}, &serviceErrors.DuplicateAliasError{ShortURL: shortURL}
		}
		return modellink.Link{}, err
	}
	return toModel(entry), nil
}

// createWithRandomCode draws random codes until the storage accepts one, capped at maxCodeAttempts.
func (short *Shortener) createWithRandomCode(ctx context.Context, owner string, originalURL string) (modellink.Link, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return modellink.Link{}, err
		}
		entry, err := short.persist(ctx, owner, originalURL, code)
		if err != nil {
			var exists *storageErrors.AlreadyExistsError
			if errors.As(err, &exists) {
				continue
			}
			return modellink.Link{}, err
		}
		return toModel(entry), nil
	}
	return modellink.Link{}, &serviceErrors.ExhaustedRetriesError{Attempts: maxCodeAttempts}
}

// persist generates the QR artifact and stores the link entry.
func (short *Shortener) persist(ctx context.Context, owner string, originalURL string, shortURL string) (modelstorage.LinkEntry, error) {
	imgName, err := short.qrGenerator.Generate(short.baseURL + "/" + shortURL)
	if err != nil {
		return modelstorage.LinkEntry{}, err
	}
	entry, err := short.LinkStorage.AddLink(ctx, modelstorage.LinkEntry{
		Owner:       owner,
		OriginalURL: originalURL,
		ShortURL:    shortURL,
		ImgName:     imgName,
	})
	if err != nil {
		return modelstorage.LinkEntry{}, err
	}
	short.log.Info("Created link", zap.String("shortURL", entry.ShortURL), zap.String("owner", owner))
	return entry, nil
}

// generateCode draws codeLength characters uniformly from codeAlphabet with replacement.
func generateCode() (string, error) {
	code := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}

func toModel(entry modelstorage.LinkEntry) modellink.Link {
	return modellink.Link{
		ID:          entry.ID,
		Owner:       entry.Owner,
		OriginalURL: entry.OriginalURL,
		ShortURL:    entry.ShortURL,
		Visits:      entry.Visits,
		DateCreated: entry.DateCreated,
		ImgName:     entry.ImgName,
	}
}
