package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/working2003/breedingo/domain"
)

// MockChallengeStore implements domain.ChallengeStore in memory for testing.
// TTLs are recorded but not enforced unless ExpireNow is called.
type MockChallengeStore struct {
	mu         sync.Mutex
	challenges map[string]*domain.OTPChallenge
	attempts   map[string]int64
	ttls       map[string]time.Duration

	PutFunc func(ctx context.Context, challenge *domain.OTPChallenge, ttl time.Duration) error
}

// NewMockChallengeStore creates an empty in-memory challenge store
func NewMockChallengeStore() *MockChallengeStore {
	return &MockChallengeStore{
		challenges: map[string]*domain.OTPChallenge{},
		attempts:   map[string]int64{},
		ttls:       map[string]time.Duration{},
	}
}

func (m *MockChallengeStore) Put(ctx context.Context, challenge *domain.OTPChallenge, ttl time.Duration) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, challenge, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.challenges[challenge.MobileNumber] = challenge
	m.attempts[challenge.MobileNumber] = 0
	m.ttls[challenge.MobileNumber] = ttl
	return nil
}

func (m *MockChallengeStore) Get(ctx context.Context, mobile string) (*domain.OTPChallenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	challenge, ok := m.challenges[mobile]
	if !ok {
		return nil, domain.ErrNoChallenge
	}
	return challenge, nil
}

func (m *MockChallengeStore) IncrAttempts(ctx context.Context, mobile string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[mobile]++
	return m.attempts[mobile], nil
}

func (m *MockChallengeStore) DecrAttempts(ctx context.Context, mobile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[mobile]--
	return nil
}

func (m *MockChallengeStore) Delete(ctx context.Context, mobile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.challenges, mobile)
	delete(m.attempts, mobile)
	delete(m.ttls, mobile)
	return nil
}

// ExpireNow simulates TTL expiry for a mobile number
func (m *MockChallengeStore) ExpireNow(mobile string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.challenges, mobile)
	delete(m.attempts, mobile)
	delete(m.ttls, mobile)
}

// TTL reports the TTL recorded for a mobile number's challenge
func (m *MockChallengeStore) TTL(mobile string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ttl, ok := m.ttls[mobile]
	return ttl, ok
}
