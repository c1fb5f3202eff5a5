package services

import (
	"fmt"
	"sync"
)

// MockNotificationService records built links for test assertions
type MockNotificationService struct {
	mu    sync.Mutex
	calls []MockNotificationCall
	// FailNext makes the next BuildLink call return an error
	FailNext bool
}

// MockNotificationCall is one recorded BuildLink invocation
type MockNotificationCall struct {
	Phone   string
	Message string
}

// NewMockNotificationService creates a new mock notification service
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SetAsMockForTesting sets this mock as the global notification service instance
func (m *MockNotificationService) SetAsMockForTesting() {
	SetNotificationService(m)
}

// BuildLink records the call and returns a fake link
func (m *MockNotificationService) BuildLink(phone, message string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailNext {
		m.FailNext = false
		return "", fmt.Errorf("mock link failure")
	}

	m.calls = append(m.calls, MockNotificationCall{Phone: phone, Message: message})
	return fmt.Sprintf("https://wa.me/mock?call=%d", len(m.calls)), nil
}

// Calls returns the recorded invocations
func (m *MockNotificationService) Calls() []MockNotificationCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]MockNotificationCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}
