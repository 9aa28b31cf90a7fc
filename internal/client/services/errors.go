package services

import "errors"

// Sentinel kinds for server-rejected auth actions. Match with errors.Is;
// the user-facing text lives in AuthError.Message, verbatim from the
// server.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistration       = errors.New("registration failed")
	ErrKeyRefresh         = errors.New("api key refresh failed")
)

// ValidationError is a local pre-flight failure. It never corresponds to a
// network exchange: the request is short-circuited before being sent.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// AuthError is an auth action rejected by the server (or, for key refresh,
// failed in transport). Message carries the server-provided text verbatim
// so the UI can present it unchanged.
type AuthError struct {
	Kind    error
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Kind }
