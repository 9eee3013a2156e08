// Package errors provides structured error types for itemd components.
//
// StructuredError carries an ErrorCode for programmatic handling alongside
// a human-readable message and an optional wrapped cause, so callers can
// distinguish expected conditions (NOT_FOUND, INVALID_REQUEST) from faults
// (INTERNAL, SERVICE_UNAVAILABLE) without string matching.
package errors
