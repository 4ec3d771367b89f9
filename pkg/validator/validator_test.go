package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapegate/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.RequiredString("name", "value")))
	assert.Error(t, validator.Apply(validator.RequiredString("name", "")))
	assert.Error(t, validator.Apply(validator.RequiredString("name", "   ")))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"user@example.com", "first.last@sub.example.org"}
	for _, email := range valid {
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}

	invalid := []string{"", "plainaddress", "user@", "User Name <user@example.com>"}
	for _, email := range invalid {
		assert.Error(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}
}

func TestValidURLWithScheme(t *testing.T) {
	t.Parallel()

	schemes := []string{"http", "https"}

	valid := []string{"http://example.com", "https://example.com/path?q=1"}
	for _, u := range valid {
		assert.NoError(t, validator.Apply(validator.ValidURLWithScheme("url", u, schemes)), u)
	}

	invalid := []string{"", "example.com", "ftp://example.com", "/relative/path", "http://"}
	for _, u := range invalid {
		assert.Error(t, validator.Apply(validator.ValidURLWithScheme("url", u, schemes)), u)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("collects every failed field", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("email", ""),
			validator.RequiredString("password", ""),
		)
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 2)
		assert.True(t, errs.Has("email"))
		assert.True(t, errs.Has("password"))
		assert.Contains(t, errs.Error(), "email: field is required")
	})

	t.Run("returns nil when all checks pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("email", "user@example.com"),
			validator.ValidEmail("email", "user@example.com"),
		)
		assert.NoError(t, err)
	})
}
