// Package errors provides custom errors for types implementing storage interfaces.
package errors

import (
	"fmt"
)

type (
	LinkNotFoundError struct {
		ShortURL string
		Err      error
	}
	LinkIDNotFoundError struct {
		ID  int64
		Err error
	}
	AlreadyExistsError struct {
		ShortURL string
		Err      error
	}
	DuplicateUsernameError struct {
		Username string
		Err      error
	}
	DuplicateEmailError struct {
		Email string
		Err   error
	}
	UserNotFoundError struct {
		Username string
		Err      error
	}
	ContextTimeoutExceededError struct {
		Err error
	}
	StatementPSQLError struct {
		Err error
	}
	ScanningPSQLError struct {
		Err error
	}
	ExecutionPSQLError struct {
		Err error
	}
)

func (e *LinkNotFoundError) Error() string {
	return fmt.Sprintf("%s: not found in storage", e.ShortURL)
}

func (e *LinkIDNotFoundError) Error() string {
	return fmt.Sprintf("link %d: not found in storage", e.ID)
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: already exists in storage", e.ShortURL)
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("%s: username already taken", e.Username)
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("%s: email already taken", e.Email)
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("%s: no such user", e.Username)
}

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *StatementPSQLError) Error() string {
	return fmt.Sprintf("%s: could not compile statement", e.Err.Error())
}

func (e *ScanningPSQLError) Error() string {
	return fmt.Sprintf("%s: could not scan rows", e.Err.Error())
}

func (e *ExecutionPSQLError) Error() string {
	return fmt.Sprintf("%s: could not execute statement", e.Err.Error())
}
