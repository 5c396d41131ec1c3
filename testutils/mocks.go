package testutils

import (
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifySignup(name, email, token string) error {
	args := m.Called(name, email, token)
	return args.Error(0)
}

func (m *MockNotifier) NotifyResend(name, email, token string) error {
	args := m.Called(name, email, token)
	return args.Error(0)
}

func (m *MockNotifier) NotifyDuplicate(name, email string) error {
	args := m.Called(name, email)
	return args.Error(0)
}
