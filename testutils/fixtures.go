package testutils

import (
	"time"

	"github.com/tech-arch1tect/signup/config"
)

func GetTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "Test App",
			URL:  "http://localhost:8080",
		},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    ":memory:",
		},
		Mail: config.MailConfig{
			Host:        "localhost",
			Port:        587,
			Encryption:  "none",
			FromAddress: "noreply@example.com",
			FromName:    "Test App",
		},
		Signup: config.SignupConfig{
			TokenExpiry: time.Hour,
		},
	}
}

var TestAccounts = struct {
	Valid struct {
		Name        string
		Email       string
		Password    string
		AccountType string
	}
	UppercaseName struct {
		Name        string
		Email       string
		Password    string
		AccountType string
	}
}{
	Valid: struct {
		Name        string
		Email       string
		Password    string
		AccountType string
	}{
		Name:        "bob",
		Email:       "bob@example.com",
		Password:    "x",
		AccountType: "user",
	},
	UppercaseName: struct {
		Name        string
		Email       string
		Password    string
		AccountType string
	}{
		Name:        "Bob",
		Email:       "bob2@example.com",
		Password:    "x",
		AccountType: "user",
	},
}
