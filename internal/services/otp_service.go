package services

import (
	"context"
	"time"

	"github.com/working2003/breedingo/domain"
)

// OTPServiceImpl implements domain.OTPService. The provider owns code
// generation and checking; this service owns the per-mobile challenge state
// (order id, TTL, attempt bound) in the challenge store.
type OTPServiceImpl struct {
	provider domain.OTPProvider
	store    domain.ChallengeStore
	config   OTPConfig
}

type OTPConfig struct {
	TTL         time.Duration
	MaxAttempts int
}

// NewOTPService creates a new OTP service
func NewOTPService(provider domain.OTPProvider, store domain.ChallengeStore, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		provider: provider,
		store:    store,
		config:   config,
	}
}

// Begin implements domain.OTPService. Dispatches a code through the provider
// and records the pending challenge, replacing any prior one for the number.
func (s *OTPServiceImpl) Begin(ctx context.Context, mobile string) (string, error) {
	orderID, err := s.provider.Send(ctx, mobile)
	if err != nil {
		return "", err
	}

	challenge := &domain.OTPChallenge{
		MobileNumber: mobile,
		OrderID:      orderID,
		IssuedAt:     time.Now(),
	}
	if err := s.store.Put(ctx, challenge, s.config.TTL); err != nil {
		return "", err
	}

	return orderID, nil
}

// Verify implements domain.OTPService. A missing challenge is reported
// before any attempt is spent; the counter is incremented before the
// provider call so concurrent wrong guesses stay bounded, and a provider
// transport failure refunds its attempt since no code was actually checked.
// The challenge is consumed on success.
func (s *OTPServiceImpl) Verify(ctx context.Context, mobile, code string) error {
	if _, err := s.store.Get(ctx, mobile); err != nil {
		return err
	}

	attempts, err := s.store.IncrAttempts(ctx, mobile)
	if err != nil {
		return err
	}
	if attempts > int64(s.config.MaxAttempts) {
		s.store.Delete(ctx, mobile)
		return domain.ErrOTPMaxAttempts
	}

	ok, err := s.provider.Check(ctx, mobile, code)
	if err != nil {
		s.store.DecrAttempts(ctx, mobile)
		return err
	}
	if !ok {
		return domain.ErrOTPInvalid
	}

	// One-time use: a second verify for the same challenge must fail.
	return s.store.Delete(ctx, mobile)
}
