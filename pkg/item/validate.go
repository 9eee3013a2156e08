package item

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Validation messages returned verbatim in HTTP error bodies.
const (
	msgNameRequired      = "Name is required and must be a string"
	msgDescriptionString = "Description must be a string"
	msgInvalidBody       = "Invalid request body"
)

// ValidationError marks a payload as rejected before any store call.
type ValidationError struct {
	msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.msg
}

// IsValidationError reports whether err is a payload validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// decodeBody decodes a JSON payload into dst, translating JSON type
// mismatches on known fields into their validation messages.
func decodeBody(r io.Reader, dst any) error {
	err := json.NewDecoder(r).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		// An absent body is treated as an empty payload; field-level
		// validation decides whether that is acceptable.
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "name":
			return &ValidationError{msg: msgNameRequired}
		case "description":
			return &ValidationError{msg: msgDescriptionString}
		}
	}
	return &ValidationError{msg: msgInvalidBody}
}

// validateCreate checks a creation payload. Name is required and must be a
// non-empty string; description is optional.
func validateCreate(req CreateRequest) error {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return &ValidationError{msg: msgNameRequired}
	}
	return nil
}

// validateUpdate checks an update payload. Both fields are optional, but a
// name present in the payload must be non-empty. An entirely empty payload
// is valid (a "touch" update).
func validateUpdate(req UpdateRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return &ValidationError{msg: msgNameRequired}
	}
	return nil
}
