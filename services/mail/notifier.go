package mail

import (
	"fmt"
	"strings"
)

// The three notification methods below satisfy the signup workflows'
// notifier contract. Each renders the matching mail template; the
// verification URL is built from the configured application URL.

func (s *Service) NotifySignup(name, email, token string) error {
	data := TemplateData{
		"Name":            name,
		"Email":           email,
		"VerificationURL": s.verificationURL(token),
		"ExpiryDuration":  s.config.Signup.TokenExpiry.String(),
		"AppName":         s.config.App.Name,
	}

	return s.SendTemplate("signup", []string{email}, "Please verify your email address", data)
}

func (s *Service) NotifyResend(name, email, token string) error {
	data := TemplateData{
		"Name":            name,
		"Email":           email,
		"VerificationURL": s.verificationURL(token),
		"ExpiryDuration":  s.config.Signup.TokenExpiry.String(),
		"AppName":         s.config.App.Name,
	}

	return s.SendTemplate("resend", []string{email}, "Your new verification link", data)
}

func (s *Service) NotifyDuplicate(name, email string) error {
	data := TemplateData{
		"Name":    name,
		"Email":   email,
		"AppName": s.config.App.Name,
	}

	return s.SendTemplate("duplicate_signup", []string{email}, "A signup was attempted with your email address", data)
}

func (s *Service) verificationURL(token string) string {
	return fmt.Sprintf("%s/verify/%s", strings.TrimSuffix(s.config.App.URL, "/"), token)
}
