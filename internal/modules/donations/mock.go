package donations

import (
	"context"
	"sync"
)

type MockRecorder struct {
	mu        sync.Mutex
	Attempts  []Attempt
	Donations []Donation
	Err       error
}

func (m *MockRecorder) RecordAttempt(ctx context.Context, a Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Attempts = append(m.Attempts, a)
	return nil
}

func (m *MockRecorder) RecordDonation(ctx context.Context, d Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Donations = append(m.Donations, d)
	return nil
}
