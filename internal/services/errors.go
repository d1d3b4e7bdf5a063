package services

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuote: a quote needs at least one line item.
	ErrEmptyQuote = errors.New("quote_requires_items")
	// ErrInvalidClientType: client_type must be distributor or client.
	ErrInvalidClientType = errors.New("invalid_client_type")
)

// NotFoundError identifies a missing record by kind ("product", "quote") and id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s_not_found: %s", e.Kind, e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
