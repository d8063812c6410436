// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication and authorization middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrAdminAccessRequired is returned when an authenticated non-admin
	// user attempts an admin-only operation.
	ErrAdminAccessRequired = errors.New("admin access required")

	// ErrInvalidID is returned when a path parameter cannot be parsed as a
	// numeric identifier.
	ErrInvalidID = errors.New("invalid id")
)
