// Package apperr defines the error kinds surfaced by the clinic services.
// Every error carries an oops code and a public message that is safe to show
// to the caller.
package apperr

import (
	"github.com/samber/oops"
)

// Error codes.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeAuthFailure  = "AUTH_FAILURE"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodePersistence  = "PERSISTENCE_ERROR"
)

// MsgInvalidCredentials is returned for every failed login, whether or not
// the account exists.
const MsgInvalidCredentials = "invalid username and/or password"

// Validation reports a missing or mismatched field the user can correct.
func Validation(msg string) error {
	return oops.Code(CodeValidation).Public(msg).Errorf("%s", msg)
}

// AuthFailure reports bad credentials or an unknown account.
func AuthFailure() error {
	return oops.Code(CodeAuthFailure).Public(MsgInvalidCredentials).Errorf(MsgInvalidCredentials)
}

// Conflict wraps a uniqueness violation on account creation.
func Conflict(msg string, err error) error {
	return oops.Code(CodeConflict).Public(msg).Wrapf(err, "%s", msg)
}

// Unauthorized reports a protected operation attempted without a valid
// session of the required class.
func Unauthorized(msg string) error {
	return oops.Code(CodeUnauthorized).Public(msg).Errorf("%s", msg)
}

// NotFound reports a lookup of a nonexistent account.
func NotFound(what string) error {
	return oops.Code(CodeNotFound).Public(what + " not found").Errorf("%s not found", what)
}

// Persistence wraps an opaque store failure.
func Persistence(msg string, err error) error {
	return oops.Code(CodePersistence).Public(msg).Wrapf(err, "%s", msg)
}

// CodeOf returns the oops code attached to err, or "" for plain errors.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	o, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	code, _ := any(o.Code()).(string)
	return code
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return CodeOf(err) == code
}

// PublicMessage returns the user-safe message of err, or fallback when err
// carries none.
func PublicMessage(err error, fallback string) string {
	return oops.GetPublic(err, fallback)
}
