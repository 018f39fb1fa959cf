package domain

import (
	"errors"
	"fmt"
)

// Business rule rejection codes. Every failed command returns exactly one of
// these; the code identifies the first violated rule in the decide chain.
const (
	// Cart-level rules.
	EDUPLICATEPRODUCT  = "duplicate_product"
	EITEMNOTFOUND      = "item_not_found"
	EALREADYCHECKEDOUT = "already_checked_out"
	EMAXITEMS          = "max_items_exceeded"
	EMAXTOTALQUANTITY  = "max_total_quantity_exceeded"
	EMAXTOTALPRICE     = "max_total_price_exceeded"
	EEMPTYCART         = "empty_cart"

	// Item-level rules.
	EINVALIDPRODUCTID   = "invalid_product_id"
	EINVALIDQUANTITY    = "invalid_quantity"
	EMAXITEMQUANTITY    = "max_item_quantity_exceeded"
	EINVALIDUNITPRICE   = "invalid_unit_price"
	EMAXUNITPRICE       = "max_unit_price_exceeded"
	EUNITPRICEPRECISION = "invalid_unit_price_precision"
	EINVALIDDISCOUNT    = "invalid_discount_percentage"
	EDISCOUNTPRECISION  = "invalid_discount_precision"
	EDISCOUNTREDUCED    = "discount_cannot_be_reduced"
	EINSUFFICIENTSTOCK  = "insufficient_stock"
)

// Infrastructure codes, used by collaborators (event store, publisher)
// rather than by the aggregate's decide chains.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	ENOTFOUND = "not_found"
)

// Error represents a domain error with a machine-readable code and a
// human-readable message. Two errors are equal when code and message match.
type Error struct {
	// Code is a machine-readable error code (e.g., EDUPLICATEPRODUCT).
	Code string

	// Message is a human-readable message safe to show to users.
	Message string

	// Op is the operation where the error occurred (e.g., "cart.add_item").
	// Used for debugging and logging, not shown to users.
	Op string

	// Err is the underlying error, if any. Used for error wrapping.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		if e.Op != "" {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a domain error with the same code and
// message, so errors.Is works against the package sentinels regardless of
// which instance carried the failure.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// ErrorCode extracts the error code from an error.
// Returns EINTERNAL for non-domain errors and "" for nil.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return EINTERNAL
}

// ErrorMessage extracts a user-facing message from an error.
// For internal errors, returns a generic message to avoid leaking details.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		if e.Code == EINTERNAL {
			return "An internal error occurred. Please try again later."
		}
		return e.Message
	}

	return "An internal error occurred. Please try again later."
}

// IsCode returns true if err has the given error code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}

// Errorf creates a new domain error with formatted message.
// Example: domain.Errorf(domain.ECONFLICT, "store.append", "version mismatch: want %d", v)
func Errorf(code, op, format string, args ...interface{}) error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an existing error with a domain error code and operation.
// Preserves the underlying error for logging while providing structure.
// Returns nil if err is nil.
func WrapError(err error, code, op, message string) error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}
