package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload is missing
	// required fields or fails validation rules.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any login failure, whether the
	// email is unknown or the password is wrong. A single error keeps the
	// API from revealing which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for any token validation
	// failure: expired, malformed, wrong signature, or wrong issuer.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
