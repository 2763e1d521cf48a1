package errors

import (
	"errors"
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

	if unwrapped := errors.Unwrap(appErr); unwrapped != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestInvalidDateFormat(t *testing.T) {
	cause := errors.New("month not found")
	err := InvalidDateFormat("month not found", cause)

	if err.Code != CodeInvalidDateFormat {
		t.Errorf("expected code %s, got %s", CodeInvalidDateFormat, err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
	if err.Details["reason"] != "month not found" {
		t.Errorf("expected reason detail, got %v", err.Details)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestDateConflict(t *testing.T) {
	err := DateConflict("20-22 June")

	if err.Code != CodeDateConflict {
		t.Errorf("expected code %s, got %s", CodeDateConflict, err.Code)
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, err.HTTPStatus)
	}
	if err.Details["conflicting_dates"] != "20-22 June" {
		t.Errorf("expected conflicting_dates detail, got %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("already booked")
	if got := AsAppError(appErr); got != appErr {
		t.Errorf("AsAppError should return the same *AppError")
	}

	plain := errors.New("boom")
	got := AsAppError(plain)
	if got.Code != CodeInternal {
		t.Errorf("expected plain errors to map to %s, got %s", CodeInternal, got.Code)
	}
	if !errors.Is(got, plain) {
		t.Errorf("expected original error to be wrapped")
	}
}
