package models

// AuthResponse is the success payload of register and login:
// the public user projection plus a freshly issued session token.
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// MessageResponse is the generic `{"message": "..."}` body used for
// errors and confirmation responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes a single failed validation rule on a named
// request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body returned when request payload
// validation fails. Each entry points at one offending field.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// DeleteAllResponse confirms a collection-wide delete and reports how
// many records were removed.
type DeleteAllResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
