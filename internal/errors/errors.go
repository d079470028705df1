package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// NotFound indicates a lookup found nothing
	NotFound ErrorCode = "NOT_FOUND"
	// NoFileSpec indicates an xref node has no associated file
	NoFileSpec ErrorCode = "NO_FILE_SPEC"
	// ServerError indicates the backend failed or replied with something unusable
	ServerError ErrorCode = "SERVER_ERROR"
	// DecodeError indicates a payload could not be decoded
	DecodeError ErrorCode = "DECODE_ERROR"
	// InvalidArgument indicates a caller supplied an unusable value
	InvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// NoSourceRoot indicates the local checkout root could not be determined
	NoSourceRoot ErrorCode = "NO_SOURCE_ROOT"
	// CacheError indicates the response cache failed
	CacheError ErrorCode = "CACHE_ERROR"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// OpenDocs suggests opening documentation
	OpenDocs FixActionType = "open-docs"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"`
}

// CsError is the error type returned by every codesearch package.
type CsError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// NewCsError creates a new CsError
func NewCsError(code ErrorCode, message string, cause error, suggestedFixes []FixAction) *CsError {
	return &CsError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: suggestedFixes,
	}
}

// Newf creates a CsError with a formatted message and the default fixes for code.
func Newf(code ErrorCode, format string, args ...interface{}) *CsError {
	return NewCsError(code, fmt.Sprintf(format, args...), nil, GetSuggestedFixes(code))
}

// Wrap creates a CsError around cause.
func Wrap(code ErrorCode, cause error, format string, args ...interface{}) *CsError {
	return NewCsError(code, fmt.Sprintf(format, args...), cause, GetSuggestedFixes(code))
}

// Error implements the error interface
func (e *CsError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CsError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *CsError) WithDetails(details interface{}) *CsError {
	e.Details = details
	return e
}

// CodeOf returns the code of the outermost CsError in err's chain, or "" if
// there is none.
func CodeOf(err error) ErrorCode {
	var csErr *CsError
	if stderrors.As(err, &csErr) {
		return csErr.Code
	}
	return ""
}

// Is reports whether any CsError in err's chain carries code.
func Is(err error, code ErrorCode) bool {
	for err != nil {
		var csErr *CsError
		if !stderrors.As(err, &csErr) {
			return false
		}
		if csErr.Code == code {
			return true
		}
		err = csErr.cause
	}
	return false
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	NoSourceRoot: {
		{
			Type:        RunCommand,
			Command:     "codesearch --source-root=<path to checkout>",
			Safe:        true,
			Description: "Pass the checkout root explicitly",
		},
	},
	CacheError: {
		{
			Type:        RunCommand,
			Command:     "codesearch cache clear",
			Safe:        true,
			Description: "Drop the local response cache",
		},
	},
	ServerError: {
		{
			Type:        RunCommand,
			Command:     "codesearch status",
			Safe:        true,
			Description: "Check that the backend is reachable",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
