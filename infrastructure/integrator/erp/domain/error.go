package erpdomain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("missing client credentials")
	ErrTokenRejected      = errors.New("token request rejected by identity provider")
	ErrTokenRequest       = errors.New("token request failed")

	ErrFetch = errors.New("retail transactions fetch failed")
)

// AuthError is returned by the token provider. A run cannot continue without a token.
type AuthError struct {
	Err         error
	Code        string // provider error code, e.g. invalid_client
	Description string
}

func (e *AuthError) Error() string {
	msg := "erp auth: " + e.Err.Error()
	if e.Code != "" {
		msg += ": " + e.Code
	}
	if e.Description != "" {
		msg += ": " + e.Description
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

type FetchErrorKind string

const (
	FetchTransport FetchErrorKind = "transport"
	FetchStatus    FetchErrorKind = "status"
	FetchTimeout   FetchErrorKind = "timeout"
	FetchDecode    FetchErrorKind = "decode"
)

// FetchError aborts the whole fetch. No partial result is ever returned alongside it.
type FetchError struct {
	Kind       FetchErrorKind
	Page       int
	StatusCode int
	Code       string // OData error code, when the body carried one
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("erp fetch (%s) on page %d", e.Kind, e.Page)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Code != "" {
		msg += ": " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets callers match any FetchError with errors.Is(err, ErrFetch).
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
