package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Amount   int64  `json:"amount" validate:"gte=0"`
	Untagged string `validate:"omitempty,max=2"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Username: "alice", Email: "a@x.com", Amount: 0})
	assert.NoError(t, err)
}

func TestValidateFormatsFieldErrorsByJSONName(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Username: "al", Email: "not-an-email", Amount: -5})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "username must be at least 3 characters", formatted["username"])
	assert.Equal(t, "email must be a valid email address", formatted["email"])
	assert.Equal(t, "amount must be greater than or equal to 0", formatted["amount"])
	assert.NotContains(t, formatted, "Username")
}

func TestValidateRequired(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "username is required", formatted["username"])
	assert.Equal(t, "email is required", formatted["email"])
}

func TestValidateFallsBackToGoNameWithoutJSONTag(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Username: "alice", Email: "a@x.com", Untagged: "abc"})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Untagged must be at most 2 characters", formatted["Untagged"])
}
