package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnpat/go-portfolio/models"
)

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	out := make(map[string]string, len(ve.Fields))
	for _, fe := range ve.Fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestValidateStruct_Valid(t *testing.T) {
	v := NewRequestValidator()

	err := v.ValidateStruct(models.RegisterRequest{
		Name:     "John",
		Email:    "john@example.com",
		Password: "secret",
	})

	assert.NoError(t, err)
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	v := NewRequestValidator()

	err := v.ValidateStruct(models.RegisterRequest{})

	fields := fieldMessages(t, err)
	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "is required", fields["Email"])
	assert.Equal(t, "is required", fields["Password"])
}

func TestValidateStruct_EmailShape(t *testing.T) {
	v := NewRequestValidator()

	err := v.ValidateStruct(models.LoginRequest{
		Email:    "not-an-email",
		Password: "secret",
	})

	fields := fieldMessages(t, err)
	assert.Equal(t, "must be a valid email address", fields["Email"])
}

func TestValidateStruct_PasswordTooShort(t *testing.T) {
	v := NewRequestValidator()

	err := v.ValidateStruct(models.RegisterRequest{
		Name:     "John",
		Email:    "john@example.com",
		Password: "123",
	})

	fields := fieldMessages(t, err)
	assert.Equal(t, "must be at least 6 characters long", fields["Password"])
}

func TestValidateStruct_Contact(t *testing.T) {
	v := NewRequestValidator()

	// phone and message are optional
	err := v.ValidateStruct(models.Contact{
		Firstname: "Jane",
		Lastname:  "Doe",
		Email:     "jane@example.com",
	})
	assert.NoError(t, err)

	err = v.ValidateStruct(models.Contact{Email: "jane@example.com"})
	fields := fieldMessages(t, err)
	assert.Equal(t, "is required", fields["Firstname"])
	assert.Equal(t, "is required", fields["Lastname"])
}
