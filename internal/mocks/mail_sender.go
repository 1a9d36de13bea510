package mocks

import (
	"context"
	"sync"

	"github.com/Anastasia-front/contacts-api/internal/platform/mail"
)

// MockMailSender records sent messages.
type MockMailSender struct {
	Err error

	mu   sync.Mutex
	Sent []mail.Message
}

var _ mail.Sender = (*MockMailSender)(nil)

// Send implements mail.Sender
func (m *MockMailSender) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// Last returns the most recent message and whether there is one.
func (m *MockMailSender) Last() (mail.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Sent) == 0 {
		return mail.Message{}, false
	}
	return m.Sent[len(m.Sent)-1], true
}
