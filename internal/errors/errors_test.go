package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with status code",
			err:  NewAPIError(502, "http://localhost:8080/api/chat", "bad gateway"),
			want: "API error [502] at http://localhost:8080/api/chat: bad gateway",
		},
		{
			name: "without status code",
			err:  NewAPIError(0, "http://localhost:8080/api/chat", "connection refused"),
			want: "API error at http://localhost:8080/api/chat: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIErrorIs(t *testing.T) {
	err := fmt.Errorf("send failed: %w", NewAPIError(500, "/api/chat", "boom"))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("expected errors.As to find APIError in chain")
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
}

func TestDecodeErrorIsInvalidResponse(t *testing.T) {
	err := NewDecodeError("/api/chat", errors.New("unexpected token"))

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("DecodeError should match ErrInvalidResponse sentinel")
	}
	if err.Unwrap() == nil {
		t.Error("Unwrap() should return the cause")
	}
}

func TestGetHTTPStatus(t *testing.T) {
	if got := GetHTTPStatus(NewAPIError(404, "/x", "not found")); got != 404 {
		t.Errorf("GetHTTPStatus = %d, want 404", got)
	}
	if got := GetHTTPStatus(errors.New("plain")); got != 0 {
		t.Errorf("GetHTTPStatus = %d, want 0 for plain error", got)
	}
}
