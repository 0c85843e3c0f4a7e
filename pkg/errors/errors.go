package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Source errors
	ErrSourceRead ErrorCode = "SOURCE_READ"
	ErrSourceInfo ErrorCode = "SOURCE_INFO"

	// SVG errors, recoverable per icon
	ErrSVGParse    ErrorCode = "SVG_PARSE"
	ErrSVGCleanup  ErrorCode = "SVG_CLEANUP"
	ErrSVGOptimize ErrorCode = "SVG_OPTIMIZE"

	// Icon set errors
	ErrIconNotFound       ErrorCode = "ICON_NOT_FOUND"
	ErrInvalidAliasTarget ErrorCode = "INVALID_ALIAS_TARGET"
	ErrAliasShadowsIcon   ErrorCode = "ALIAS_SHADOWS_ICON"

	// Manifest errors
	ErrManifestWrite  ErrorCode = "MANIFEST_WRITE"
	ErrManifestRead   ErrorCode = "MANIFEST_READ"
	ErrManifestFormat ErrorCode = "MANIFEST_FORMAT"
)

// SvgsetError represents a structured error with code and details
type SvgsetError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SvgsetError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SvgsetError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SvgsetError) Is(target error) bool {
	var targetErr *SvgsetError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SvgsetError with the given code and message
func New(code ErrorCode, message string) *SvgsetError {
	return &SvgsetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SvgsetError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SvgsetError {
	return &SvgsetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SvgsetError
func Wrap(err error, code ErrorCode, message string) *SvgsetError {
	if err == nil {
		return nil
	}
	return &SvgsetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SvgsetError {
	if err == nil {
		return nil
	}
	return &SvgsetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SvgsetError) WithDetail(key string, value interface{}) *SvgsetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var svgsetErr *SvgsetError
	if errors.As(err, &svgsetErr) {
		return svgsetErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SvgsetError
func GetErrorCode(err error) ErrorCode {
	var svgsetErr *SvgsetError
	if errors.As(err, &svgsetErr) {
		return svgsetErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SvgsetError
func GetErrorDetails(err error) map[string]interface{} {
	var svgsetErr *SvgsetError
	if errors.As(err, &svgsetErr) {
		return svgsetErr.Details
	}
	return nil
}
