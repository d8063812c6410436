package validators

import (
	"strings"

	"github.com/mnpat/go-portfolio/models"
)

// ValidationError aggregates the field-level failures of a single request
// payload. It is matched at the transport boundary with errors.As and
// serialized as `{"errors": [{"field": ..., "message": ...}]}`.
type ValidationError struct {
	Fields []models.FieldError
}

// Error implements the error interface. It joins all field messages into a
// single line for logging; clients receive the structured form instead.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
