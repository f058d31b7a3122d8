package quote

import (
	"errors"
	"fmt"

	"workshop-quotes/internal/pkg/errs"
)

var (
	ErrNotFound           = errs.New("quote not found")
	ErrInvalidTransition  = errs.New("invalid quote transition")
	ErrAlreadyClaimed     = errs.New("quote already claimed by another mechanic")
	ErrTokenInvalid       = errs.New("link invalid or expired")
	ErrConversionConflict = errs.New("quote already converted")
	ErrValidation         = errs.New("quote validation failed")
)

type InvalidTransitionError struct {
	Action Action
	From   Status
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("cannot %s a quote in status %s", e.Action, e.From)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ReasonSuperseded marks a quote that a newer revision has replaced.
const ReasonSuperseded = "already superseded"

// Superseded refuses action on a quote that has a child revision.
func Superseded(action Action, from Status) error {
	return invalidTransitionBecause(action, from, ReasonSuperseded)
}

func IsSuperseded(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr) && transitionErr.Reason == ReasonSuperseded
}

func invalidTransition(action Action, from Status) error {
	return &InvalidTransitionError{Action: action, From: from}
}

func invalidTransitionBecause(action Action, from Status, reason string) error {
	return &InvalidTransitionError{Action: action, From: from, Reason: reason}
}

type TokenFailure string

const (
	TokenMissing    TokenFailure = "missing"
	TokenMismatched TokenFailure = "mismatched"
	TokenExpired    TokenFailure = "expired"
	TokenSuperseded TokenFailure = "superseded"
)

// TokenError renders the same message for every cause; Reason is for logs only.
type TokenError struct {
	Reason TokenFailure
}

func (e *TokenError) Error() string {
	return ErrTokenInvalid.Error()
}

func (e *TokenError) Is(target error) bool {
	return target == ErrTokenInvalid
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
