package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewCsError(t *testing.T) {
	cause := errors.New("underlying error")
	fixes := []FixAction{{Type: RunCommand, Command: "codesearch status"}}

	err := NewCsError(ServerError, "backend unreachable", cause, fixes)

	if err.Code != ServerError {
		t.Errorf("Code = %v, want %v", err.Code, ServerError)
	}
	if err.Message != "backend unreachable" {
		t.Errorf("Message = %q, want %q", err.Message, "backend unreachable")
	}
	if len(err.SuggestedFixes) != 1 {
		t.Errorf("len(SuggestedFixes) = %d, want 1", len(err.SuggestedFixes))
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
}

func TestCsError_Error(t *testing.T) {
	tests := []struct {
		name      string
		code      ErrorCode
		message   string
		cause     error
		wantParts []string
	}{
		{
			name:      "with cause",
			code:      ServerError,
			message:   "request failed",
			cause:     errors.New("connection refused"),
			wantParts: []string{"SERVER_ERROR", "request failed", "connection refused"},
		},
		{
			name:      "without cause",
			code:      NotFound,
			message:   "no signature at 10:4",
			wantParts: []string{"NOT_FOUND", "no signature at 10:4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCsError(tt.code, tt.message, tt.cause, nil).Error()
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Error() = %q, missing %q", got, part)
				}
			}
		})
	}
}

func TestCodeOfAndIs(t *testing.T) {
	inner := Newf(DecodeError, "bad enum %q", "FOO")
	outer := Wrap(ServerError, inner, "response for %s", "file.cc")
	wrapped := fmt.Errorf("context: %w", outer)

	if got := CodeOf(wrapped); got != ServerError {
		t.Errorf("CodeOf = %v, want %v", got, ServerError)
	}
	if !Is(wrapped, DecodeError) {
		t.Error("Is(DecodeError) = false, want true")
	}
	if Is(wrapped, NotFound) {
		t.Error("Is(NotFound) = true, want false")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("CodeOf(plain error) should be empty")
	}
}

func TestGetSuggestedFixes(t *testing.T) {
	if fixes := GetSuggestedFixes(NoSourceRoot); len(fixes) == 0 {
		t.Error("expected fixes for NoSourceRoot")
	}
	if fixes := GetSuggestedFixes(NotFound); fixes != nil {
		t.Errorf("expected no fixes for NotFound, got %v", fixes)
	}
	if err := Newf(CacheError, "x"); len(err.SuggestedFixes) == 0 {
		t.Error("Newf should attach default fixes")
	}
}

func TestWithDetails(t *testing.T) {
	err := Newf(NotFound, "missing").WithDetails(map[string]string{"file": "a.cc"})
	if err.Details == nil {
		t.Error("Details not set")
	}
}
