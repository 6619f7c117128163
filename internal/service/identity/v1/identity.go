// Package identity provides functionality for registering and authenticating users.
package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	serviceErrors "github.com/Igbinosa-Christian/scissorapp/internal/service/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/identity"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/modellink"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage"
	storageErrors "github.com/Igbinosa-Christian/scissorapp/internal/storage/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ identity.Processor = (*Identity)(nil)
)

// Identity struct defines data structure handling and provides support for adding new implementations.
type Identity struct {
	log         *zap.Logger
	UserStorage storage.UserStorage
}

// InitIdentity initializes an Identity object and sets its attributes.
func InitIdentity(s storage.UserStorage, logger *zap.Logger) (*Identity, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Identity{
		log:         logger,
		UserStorage: s,
	}, nil
}

// Register hashes the password and stores a new user, rejecting duplicate usernames and emails.
func (id *Identity) Register(ctx context.Context, username string, email string, password string) (modellink.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return modellink.User{}, &serviceErrors.PasswordHashError{Err: err}
	}
	entry, err := id.UserStorage.AddUser(ctx, modelstorage.UserEntry{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return modellink.User{}, err
	}
	id.log.Info("Registered user", zap.String("username", username))
	return modellink.User{ID: entry.ID, Username: entry.Username, Email: entry.Email}, nil
}

// Authenticate verifies the password against the stored bcrypt hash.
func (id *Identity) Authenticate(ctx context.Context, username string, password string) (modellink.User, error) {
	entry, err := id.UserStorage.GetUserByUsername(ctx, username)
	if err != nil {
		var notFound *storageErrors.UserNotFoundError
		if errors.As(err, &notFound) {
			return modellink.User{}, &serviceErrors.InvalidCredentialsError{Username: username}
		}
		return modellink.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(password)); err != nil {
		return modellink.User{}, &serviceErrors.InvalidCredentialsError{Username: username}
	}
	return modellink.User{ID: entry.ID, Username: entry.Username, Email: entry.Email}, nil
}
