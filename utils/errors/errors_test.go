package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/medsupply/constant"
	cerr "github.com/muhammadheryan/medsupply/utils/errors"
)

func TestCustomError(t *testing.T) {
	tests := []struct {
		name     string
		err      cerr.CustomError
		wantMsg  string
		wantCode string
		wantHTTP int
	}{
		{
			name:     "generic message",
			err:      cerr.SetCustomError(constant.ErrInvalidTransition),
			wantMsg:  "order status transition not allowed",
			wantCode: "1003",
			wantHTTP: http.StatusConflict,
		},
		{
			name:     "detail overrides message",
			err:      cerr.SetCustomErrorf(constant.ErrOutOfStock, "medicine 7 is out of stock"),
			wantMsg:  "medicine 7 is out of stock",
			wantCode: "2001",
			wantHTTP: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Fatalf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
			if tt.err.ErrorCode() != tt.wantCode {
				t.Fatalf("ErrorCode() = %q, want %q", tt.err.ErrorCode(), tt.wantCode)
			}
			if tt.err.ErrorHTTPCode() != tt.wantHTTP {
				t.Fatalf("ErrorHTTPCode() = %d, want %d", tt.err.ErrorHTTPCode(), tt.wantHTTP)
			}
		})
	}
}

func TestCustomError_Is(t *testing.T) {
	wrapped := fmt.Errorf("dispense: %w", cerr.SetCustomErrorf(constant.ErrMedicineUnavailable, "medicine 3 missing"))

	if !errors.Is(wrapped, cerr.SetCustomError(constant.ErrMedicineUnavailable)) {
		t.Fatal("expected wrapped error to match its kind")
	}
	if errors.Is(wrapped, cerr.SetCustomError(constant.ErrOutOfStock)) {
		t.Fatal("expected different kind not to match")
	}
}
