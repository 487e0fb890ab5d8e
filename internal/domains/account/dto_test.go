package account

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Username: "jamshidev",
		Password: "somepassword",
		Email:    "jamshid@gmail.com",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("email is optional", func(t *testing.T) {
		req := valid
		req.Email = ""
		assert.NoError(t, req.Validate())
	})

	t.Run("missing required fields each get their own entry", func(t *testing.T) {
		err := RegisterRequest{FirstName: "Jamshid"}.Validate()
		require.Error(t, err)

		fieldErrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Len(t, fieldErrs, 2)
		assert.Equal(t, "This field is required.", fieldErrs["username"].Error())
		assert.Equal(t, "This field is required.", fieldErrs["password"].Error())
	})

	t.Run("bad email format", func(t *testing.T) {
		req := valid
		req.Email = "invalid-email"

		err := req.Validate()
		require.Error(t, err)

		fieldErrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Equal(t, "Enter a valid email address.", fieldErrs["email"].Error())
	})
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	t.Run("no password field involved", func(t *testing.T) {
		err := UpdateProfileRequest{
			Username: "jamshidev",
			LastName: "Doe",
			Email:    "doe@gmail.com",
		}.Validate()
		assert.NoError(t, err)
	})

	t.Run("username still required", func(t *testing.T) {
		err := UpdateProfileRequest{LastName: "Doe"}.Validate()
		require.Error(t, err)

		fieldErrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Equal(t, "This field is required.", fieldErrs["username"].Error())
	})
}
