// File: controllers/mock_mail_service.go
package controllers

import (
	"github.com/stretchr/testify/mock"
)

// MockMailService implements the MailServiceInterface for testing.
type MockMailService struct {
	mock.Mock
}

// Enabled reports the mocked configuration state.
func (m *MockMailService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

// SendContactEmails records the contact-form send attempt.
func (m *MockMailService) SendContactEmails(name, email, subject, message string) error {
	args := m.Called(name, email, subject, message)
	return args.Error(0)
}

// SendWelcomeEmail records the newsletter send attempt.
func (m *MockMailService) SendWelcomeEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}
