package domain

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    EINVALIDQUANTITY,
				Message: "Quantity must be at least 1",
			},
			expected: "Quantity must be at least 1",
		},
		{
			name: "with operation",
			err: &Error{
				Code:    EINVALIDQUANTITY,
				Op:      "cart.add_item",
				Message: "Quantity must be at least 1",
			},
			expected: "cart.add_item: Quantity must be at least 1",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "publisher.publish",
				Message: "failed to publish event",
				Err:     errors.New("connection refused"),
			},
			expected: "publisher.publish: failed to publish event: connection refused",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to publish event",
				Err:     errors.New("connection refused"),
			},
			expected: "failed to publish event: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	// Equality is by code and message, not by instance.
	same := &Error{Code: EDUPLICATEPRODUCT, Message: "Product already in cart"}
	if !errors.Is(same, ErrDuplicateProduct) {
		t.Error("errors.Is should match a distinct instance with equal code and message")
	}

	differentCode := &Error{Code: EITEMNOTFOUND, Message: "Product already in cart"}
	if errors.Is(differentCode, ErrDuplicateProduct) {
		t.Error("errors.Is should not match a different code")
	}

	differentMessage := &Error{Code: EDUPLICATEPRODUCT, Message: "other"}
	if errors.Is(differentMessage, ErrDuplicateProduct) {
		t.Error("errors.Is should not match a different message")
	}

	if errors.Is(errors.New("plain"), ErrDuplicateProduct) {
		t.Error("errors.Is should not match a non-domain error")
	}
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(nil); got != "" {
		t.Errorf("ErrorCode(nil) = %q, want empty", got)
	}

	if got := ErrorCode(ErrEmptyCart); got != EEMPTYCART {
		t.Errorf("ErrorCode(ErrEmptyCart) = %q, want %q", got, EEMPTYCART)
	}

	if got := ErrorCode(errors.New("plain")); got != EINTERNAL {
		t.Errorf("ErrorCode(plain error) = %q, want %q", got, EINTERNAL)
	}

	wrapped := WrapError(errors.New("io"), ECONFLICT, "store.append", "append failed")
	if got := ErrorCode(wrapped); got != ECONFLICT {
		t.Errorf("ErrorCode(wrapped) = %q, want %q", got, ECONFLICT)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(nil); got != "" {
		t.Errorf("ErrorMessage(nil) = %q, want empty", got)
	}

	if got := ErrorMessage(ErrEmptyCart); got != "Cannot check out an empty cart" {
		t.Errorf("ErrorMessage(ErrEmptyCart) = %q", got)
	}

	// Internal and non-domain errors hide details.
	generic := "An internal error occurred. Please try again later."
	if got := ErrorMessage(Errorf(EINTERNAL, "op", "db exploded")); got != generic {
		t.Errorf("ErrorMessage(internal) = %q, want generic message", got)
	}
	if got := ErrorMessage(errors.New("db exploded")); got != generic {
		t.Errorf("ErrorMessage(plain) = %q, want generic message", got)
	}
}

func TestWrapError_NilPassthrough(t *testing.T) {
	if WrapError(nil, EINTERNAL, "op", "msg") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
