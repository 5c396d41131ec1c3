package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, code, verr.Code)
}

func TestValidateSignup(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		err := ValidateSignup("bob", "bob@example.com", "x", "user")
		require.NoError(t, err)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		assertCode(t, ValidateSignup("", "bob@example.com", "x", "user"), CodeMissingFields)
		assertCode(t, ValidateSignup("bob", "", "x", "user"), CodeMissingFields)
		assertCode(t, ValidateSignup("bob", "bob@example.com", "", "user"), CodeMissingFields)
	})

	t.Run("rejects names that need escaping", func(t *testing.T) {
		assertCode(t, ValidateSignup("bob smith", "bob@example.com", "x", "user"), CodeNameNotURLSafe)
		assertCode(t, ValidateSignup("bob/smith", "bob@example.com", "x", "user"), CodeNameNotURLSafe)
		assertCode(t, ValidateSignup("bob+smith", "bob@example.com", "x", "user"), CodeNameNotURLSafe)
	})

	t.Run("rejects uppercase names", func(t *testing.T) {
		assertCode(t, ValidateSignup("Bob", "bob@example.com", "x", "user"), CodeNameNotLowercase)
	})

	t.Run("rejects names not starting with a letter", func(t *testing.T) {
		assertCode(t, ValidateSignup("1bob", "bob@example.com", "x", "user"), CodeNameFirstChar)
		assertCode(t, ValidateSignup("_bob", "bob@example.com", "x", "user"), CodeNameFirstChar)
	})

	t.Run("rejects malformed email addresses", func(t *testing.T) {
		for _, email := range []string{
			"not-an-email",
			"bob@",
			"@example.com",
			"bob@example",
			"bob@example.toolongtld",
			"bob space@example.com",
		} {
			assertCode(t, ValidateSignup("bob", email, "x", "user"), CodeEmailInvalid)
		}
	})

	t.Run("accepts conservative email shapes", func(t *testing.T) {
		for _, email := range []string{
			"bob@example.com",
			"bob.smith+tag@mail.example.co",
			"b_o-b%1@ex-ample.org",
		} {
			require.NoError(t, ValidateSignup("bob", email, "x", "user"), email)
		}
	})

	t.Run("rejects missing account type", func(t *testing.T) {
		assertCode(t, ValidateSignup("bob", "bob@example.com", "x", ""), CodeAccountTypeMissing)
	})

	t.Run("first failing check wins", func(t *testing.T) {
		// Uppercase and unescapable: the escaping check runs first.
		assertCode(t, ValidateSignup("Bob Smith", "nope", "x", ""), CodeNameNotURLSafe)
		// Uppercase and bad email: the name check runs first.
		assertCode(t, ValidateSignup("Bob", "nope", "x", ""), CodeNameNotLowercase)
	})
}

func TestValidateResend(t *testing.T) {
	t.Run("accepts a valid email", func(t *testing.T) {
		require.NoError(t, ValidateResend("bob@example.com"))
	})

	t.Run("rejects empty and malformed emails", func(t *testing.T) {
		assertCode(t, ValidateResend(""), CodeResendEmailInvalid)
		assertCode(t, ValidateResend("not-an-email"), CodeResendEmailInvalid)
	})
}
