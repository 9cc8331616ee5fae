package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession means the request carries no usable identity claim.
	ErrNoSession = errors.New("no session")
	// ErrAccountNotFound means the claim names an account that is deleted or
	// otherwise not live.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountSuspended is a more specific ErrAccountNotFound.
	ErrAccountSuspended = fmt.Errorf("%w: account suspended", ErrAccountNotFound)
	// ErrValidation means the liveness lookup itself failed.
	ErrValidation = errors.New("validation error")
	// ErrPermissionDenied means a live principal lacks the required permission or role.
	ErrPermissionDenied = errors.New("permission denied")
)
