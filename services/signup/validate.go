package signup

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	CodeMissingFields      = "missing_fields"
	CodeNameNotURLSafe     = "name_not_urlsafe"
	CodeNameNotLowercase   = "name_not_lowercase"
	CodeNameFirstChar      = "name_first_char"
	CodeEmailInvalid       = "email_invalid"
	CodeAccountTypeMissing = "account_type_missing"
	CodeResendEmailInvalid = "resend_email_invalid"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,6}$`)

// ValidateSignup runs the signup checks in a fixed order and stops at the
// first failure, so a given input always yields the same code.
func ValidateSignup(name, email, password, accountType string) error {
	if name == "" || email == "" || password == "" {
		return &ValidationError{Code: CodeMissingFields, Message: "name, email and password are required"}
	}
	if url.QueryEscape(name) != name {
		return &ValidationError{Code: CodeNameNotURLSafe, Message: "name may not contain spaces or special characters"}
	}
	if strings.ToLower(name) != name {
		return &ValidationError{Code: CodeNameNotLowercase, Message: "name must be lowercase"}
	}
	if c := name[0]; c < 'a' || c > 'z' {
		return &ValidationError{Code: CodeNameFirstChar, Message: "name must start with a letter"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Code: CodeEmailInvalid, Message: "email address is not valid"}
	}
	if accountType == "" {
		return &ValidationError{Code: CodeAccountTypeMissing, Message: "account type is required"}
	}
	return nil
}

func ValidateResend(email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return &ValidationError{Code: CodeResendEmailInvalid, Message: "email address is not valid"}
	}
	return nil
}
