package workflow_test

import (
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a hand-written testify mock for notify.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(mobile, message string) error {
	args := m.Called(mobile, message)
	return args.Error(0)
}
