package mocks

import (
	"context"
	"sync"

	"ecommerce-auth/pkg/notify"
)

var _ notify.SMSSender = (*MockSMSSender)(nil)

// SentSMS records one delivered message.
type SentSMS struct {
	To      string
	Message string
}

// MockSMSSender implements notify.SMSSender and records every call
type MockSMSSender struct {
	SendSMSFunc func(ctx context.Context, to, message string) error

	mu   sync.Mutex
	Sent []SentSMS
}

func NewMockSMSSender() *MockSMSSender {
	return &MockSMSSender{}
}

func (m *MockSMSSender) SendSMS(ctx context.Context, to, message string) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, SentSMS{To: to, Message: message})
	m.mu.Unlock()

	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(ctx, to, message)
	}
	return nil
}

// Messages returns a copy of what was sent so far.
func (m *MockSMSSender) Messages() []SentSMS {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentSMS(nil), m.Sent...)
}
