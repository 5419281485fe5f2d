// Package testfixtures provides test doubles and helpers shared by the TUI
// tests.
package testfixtures

import (
	"context"
	"sync"

	"github.com/gcloudgt/contacto/internal/inquiry"
)

// MockSubmitter records every delivered form and fails while Err is set.
type MockSubmitter struct {
	mu sync.Mutex

	Err       error
	Delivered []inquiry.FormData
	Calls     int
}

// Submit implements inquiry.Submitter.
func (m *MockSubmitter) Submit(_ context.Context, data inquiry.FormData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	m.Delivered = append(m.Delivered, data)
	return nil
}

// SetErr changes the error returned by later calls.
func (m *MockSubmitter) SetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// Count returns how many forms were accepted.
func (m *MockSubmitter) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Delivered)
}
