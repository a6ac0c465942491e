/**
 * Custom error types for the lipi service
 *
 * Every failure surfaced to the HTTP layer carries a stable code and the
 * stage that produced it, so handlers can map codes to statuses and the
 * caller gets a displayable message.
 */

package errors

import (
	"errors"
	"fmt"
)

// Code identifies a failure class.
type Code string

const (
	// OCR errors
	CodeOCRUnavailable Code = "OCR_UNAVAILABLE"
	CodeOCREngine      Code = "OCR_ENGINE_FAILED"

	// Transliteration errors
	CodeTranslitUnavailable Code = "TRANSLIT_UNAVAILABLE"
	CodeTranslitFailed      Code = "TRANSLIT_FAILED"

	// Request errors
	CodeEmptyInput Code = "EMPTY_INPUT"
	CodeNotFound   Code = "NOT_FOUND"

	// Storage errors
	CodeStoreFailed Code = "STORE_FAILED"
)

// ServiceError is a structured error with a stable code.
type ServiceError struct {
	Code    Code
	Message string
	Stage   string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// CodeOf extracts the service error code from err, or "" when err carries
// none.
func CodeOf(err error) Code {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// Factory functions for the error taxonomy

func NewOCRUnavailable() *ServiceError {
	return &ServiceError{
		Code:    CodeOCRUnavailable,
		Message: "no OCR engine is configured on this server",
		Stage:   "ocr",
	}
}

func NewOCREngine(cause error) *ServiceError {
	return &ServiceError{
		Code:    CodeOCREngine,
		Message: "initial OCR pass failed",
		Stage:   "ocr",
		Cause:   cause,
	}
}

func NewTranslitUnavailable() *ServiceError {
	return &ServiceError{
		Code:    CodeTranslitUnavailable,
		Message: "no transliteration backend is configured on this server",
		Stage:   "transliterate",
	}
}

func NewTranslitFailed(cause error) *ServiceError {
	return &ServiceError{
		Code:    CodeTranslitFailed,
		Message: "transliteration backend rejected the request",
		Stage:   "transliterate",
		Cause:   cause,
	}
}

func NewEmptyInput(field string) *ServiceError {
	return &ServiceError{
		Code:    CodeEmptyInput,
		Message: fmt.Sprintf("%s must not be empty", field),
		Stage:   "request",
	}
}

func NewNotFound(what, id string) *ServiceError {
	return &ServiceError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, id),
		Stage:   "store",
	}
}

func NewStoreFailed(op string, cause error) *ServiceError {
	return &ServiceError{
		Code:    CodeStoreFailed,
		Message: fmt.Sprintf("phrasebook %s failed", op),
		Stage:   "store",
		Cause:   cause,
	}
}
