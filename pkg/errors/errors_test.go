package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("database connection failed")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "resource not found",
			},
			expected: "NOT_FOUND: resource not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("database connection failed"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: database connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	unwrapped := errors.Unwrap(appErr)
	if unwrapped != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestAppError_StatusCode(t *testing.T) {
	err := New(CodeNotFound, "not found", http.StatusNotFound)
	if err.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want %d", err.StatusCode(), http.StatusNotFound)
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)
	details := map[string]any{
		"field": "email",
		"error": "invalid format",
	}

	err = err.WithDetails(details)

	if err.Details["field"] != "email" {
		t.Errorf("expected field 'email', got %v", err.Details["field"])
	}
	if err.Details["error"] != "invalid format" {
		t.Errorf("expected error 'invalid format', got %v", err.Details["error"])
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("mongo: connection reset")

	tests := []struct {
		name    string
		err     *AppError
		code    string
		status  int
		message string
	}{
		{name: "not found", err: NotFound("Booking"), code: CodeNotFound, status: http.StatusNotFound, message: "Booking not found"},
		{name: "validation", err: Validation("Validation failed", map[string]any{"date": "must be YYYY-MM-DD"}), code: CodeValidation, status: http.StatusUnprocessableEntity},
		{name: "invalid input", err: InvalidInput("Invalid request body"), code: CodeInvalidInput, status: http.StatusBadRequest},
		{name: "unauthorized", err: Unauthorized("Sign in required"), code: CodeUnauthorized, status: http.StatusUnauthorized},
		{name: "forbidden", err: Forbidden("Not your turf"), code: CodeForbidden, status: http.StatusForbidden},
		{name: "conflict", err: Conflict("Booking already exists"), code: CodeConflict, status: http.StatusConflict},
		{name: "internal", err: Internal("Failed to create booking", cause), code: CodeInternal, status: http.StatusInternalServerError},
		{name: "timeout", err: Timeout("Slot is busy, try again"), code: CodeTimeout, status: http.StatusGatewayTimeout},
		{name: "unavailable", err: Unavailable("Booking store"), code: CodeUnavailable, status: http.StatusServiceUnavailable, message: "Booking store is temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.StatusCode() != tt.status {
				t.Errorf("status = %d, want %d", tt.err.StatusCode(), tt.status)
			}
			if tt.message != "" && tt.err.Message != tt.message {
				t.Errorf("message = %q, want %q", tt.err.Message, tt.message)
			}
		})
	}

	if !errors.Is(tests[6].err, cause) {
		t.Error("Internal must keep its cause reachable through errors.Is")
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Booking", "b-42")

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.Details["id"] != "b-42" || err.Details["resource"] != "Booking" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("User")
	regularErr := errors.New("regular error")

	if !IsAppError(appErr) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if IsAppError(regularErr) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("User")
	regularErr := errors.New("regular error")

	result := AsAppError(appErr)
	if result != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	result = AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestSlotUnavailable(t *testing.T) {
	err := SlotUnavailable("slot taken", map[string]any{"turf_id": "t1"})

	if err.Code != CodeSlotUnavailable {
		t.Errorf("expected code %s, got %s", CodeSlotUnavailable, err.Code)
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, err.HTTPStatus)
	}
	if err.Details["turf_id"] != "t1" {
		t.Errorf("expected turf_id 't1', got %v", err.Details["turf_id"])
	}
}

func TestInvalidTransition(t *testing.T) {
	err := InvalidTransition("cancelled", "confirmed")

	if err.Code != CodeInvalidTransition {
		t.Errorf("expected code %s, got %s", CodeInvalidTransition, err.Code)
	}
	if err.Message != "Cannot move booking from cancelled to confirmed" {
		t.Errorf("unexpected message: %s", err.Message)
	}
	if err.Details["from"] != "cancelled" || err.Details["to"] != "confirmed" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := SlotUnavailable("slot taken", nil)
	wrapped := fmt.Errorf("transaction failed: %w", inner)

	if !IsAppError(wrapped) {
		t.Fatalf("IsAppError() should see through wrapping")
	}
	if got := AsAppError(wrapped); got != inner {
		t.Errorf("AsAppError() should return the wrapped AppError")
	}
	if !HasCode(wrapped, CodeSlotUnavailable) {
		t.Errorf("HasCode() should match wrapped code")
	}
	if HasCode(wrapped, CodeNotFound) {
		t.Errorf("HasCode() should not match a different code")
	}
}
