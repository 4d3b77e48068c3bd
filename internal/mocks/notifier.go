package mocks

import (
	"context"
	"sync"
)

// Notification captures one notifier call for verification.
type Notification struct {
	Kind  string // "welcome" or "cancellation"
	Email string
	Name  string
}

// MockNotifier implements service.Notifier for testing
type MockNotifier struct {
	mu            sync.Mutex
	Notifications []Notification
}

// NotifyWelcome implements service.Notifier
func (m *MockNotifier) NotifyWelcome(ctx context.Context, email, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, Notification{Kind: "welcome", Email: email, Name: name})
}

// NotifyCancellation implements service.Notifier
func (m *MockNotifier) NotifyCancellation(ctx context.Context, email, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, Notification{Kind: "cancellation", Email: email, Name: name})
}

// Count returns the number of notifications of the given kind.
func (m *MockNotifier) Count(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, notification := range m.Notifications {
		if notification.Kind == kind {
			n++
		}
	}
	return n
}
