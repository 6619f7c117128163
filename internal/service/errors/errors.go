// Package errors provides custom errors for service-layer types.
package errors

import (
	"fmt"
)

type (
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceIncorrectInputURL struct {
		Msg string
	}
	DuplicateAliasError struct {
		ShortURL string
	}
	ExhaustedRetriesError struct {
		Attempts int
	}
	NotOwnerError struct {
		Requester string
		Owner     string
	}
	InvalidCredentialsError struct {
		Username string
	}
	PasswordHashError struct {
		Err error
	}
	QRGenerationError struct {
		Err error
	}
)

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceIncorrectInputURL) Error() string {
	return e.Msg
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("%s: short URL already exists", e.ShortURL)
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("could not generate a unique short URL in %d attempts", e.Attempts)
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("%s: cannot modify a link owned by %s", e.Requester, e.Owner)
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("%s: invalid credentials", e.Username)
}

func (e *PasswordHashError) Error() string {
	return fmt.Sprintf("%s: could not process password", e.Err.Error())
}

func (e *QRGenerationError) Error() string {
	return fmt.Sprintf("%s: could not generate QR artifact", e.Err.Error())
}
