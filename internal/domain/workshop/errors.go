package workshop

import (
	"fmt"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

// Fixed domain errors. Use-case code matches on these via the shared errors
// type helpers, so the messages here are part of the API contract.
var (
	ErrCollectionNotFound   = errors.NewNotFoundError("collection not found")
	ErrAliasNotFound        = errors.NewNotFoundError("alias not found")
	ErrSnippetNotFound      = errors.NewNotFoundError("snippet not found")
	ErrCodeVersionNotFound  = errors.NewNotFoundError("code version not found")
	ErrSubscriptionNotFound = errors.NewNotFoundError("subscription not found")
)

// ErrBindingWhitespace reports a binding name containing whitespace.
func ErrBindingWhitespace() error {
	return errors.NewValidationError("binding names cannot contain whitespace")
}

// ErrBindingReserved reports an alias binding that shadows a built-in command.
func ErrBindingReserved(name string) error {
	return errors.NewValidationError(fmt.Sprintf("%s is already a built-in command", name))
}

// ErrBindingShortName reports a snippet binding name below the minimum length.
func ErrBindingShortName() error {
	return errors.NewValidationError(fmt.Sprintf("snippet binding names must be at least %d characters", MinSnippetNameLength))
}

// ErrNameTooLong reports a collectable name above the shared length cap.
func ErrNameTooLong() error {
	return errors.NewValidationError(fmt.Sprintf("name must be at most %d characters", MaxNameLength))
}

// ErrContentTooLarge reports code content above the per-kind size limit.
func ErrContentTooLarge(limit int) error {
	return errors.NewValidationError(fmt.Sprintf("code must be at most %d characters", limit))
}
