// Package apperrors defines the error kinds shared by both tiers. Every
// domain operation returns an *Error (or wraps one) so the HTTP boundary can
// map it to a status code in one place.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

const (
	KindInternal Kind = iota
	KindProductNotFound
	KindCategoryNotFound
	KindInventoryNotFound
	KindAlreadyExists
	KindValidation
	KindCommunication
)

func (k Kind) String() string {
	switch k {
	case KindProductNotFound:
		return "product_not_found"
	case KindCategoryNotFound:
		return "category_not_found"
	case KindInventoryNotFound:
		return "inventory_not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindValidation:
		return "validation"
	case KindCommunication:
		return "communication"
	default:
		return "internal"
	}
}

// IsNotFound reports whether k is one of the per-entity not-found kinds.
func (k Kind) IsNotFound() bool {
	return k == KindProductNotFound || k == KindCategoryNotFound || k == KindInventoryNotFound
}

// Error is a tagged application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels that carry only a kind, so
// errors.Is(err, ErrProductNotFound) holds for any product-not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrProductNotFound   = &Error{Kind: KindProductNotFound}
	ErrCategoryNotFound  = &Error{Kind: KindCategoryNotFound}
	ErrInventoryNotFound = &Error{Kind: KindInventoryNotFound}
	ErrAlreadyExists     = &Error{Kind: KindAlreadyExists}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrCommunication     = &Error{Kind: KindCommunication}
)

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ProductNotFound(format string, args ...interface{}) *Error {
	return newf(KindProductNotFound, format, args...)
}

func CategoryNotFound(format string, args ...interface{}) *Error {
	return newf(KindCategoryNotFound, format, args...)
}

func InventoryNotFound(format string, args ...interface{}) *Error {
	return newf(KindInventoryNotFound, format, args...)
}

func AlreadyExists(format string, args ...interface{}) *Error {
	return newf(KindAlreadyExists, format, args...)
}

func Validation(format string, args ...interface{}) *Error {
	return newf(KindValidation, format, args...)
}

// Communication reports a failed call to an upstream service. cause is kept
// for logging and unwrapping but never shown to clients.
func Communication(cause error, format string, args ...interface{}) *Error {
	e := newf(KindCommunication, format, args...)
	e.Err = cause
	return e
}

// Internal wraps an unexpected failure, typically from storage.
func Internal(cause error, format string, args ...interface{}) *Error {
	e := newf(KindInternal, format, args...)
	e.Err = cause
	return e
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
