package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/working2003/breedingo/domain"
	"github.com/working2003/breedingo/internal/mocks"
)

func newOTPServiceForTest(t *testing.T) (domain.OTPService, *mocks.MockOTPProvider, *mocks.MockChallengeStore) {
	t.Helper()

	provider := mocks.NewMockOTPProvider()
	store := mocks.NewMockChallengeStore()
	svc := NewOTPService(provider, store, OTPConfig{
		TTL:         5 * time.Minute,
		MaxAttempts: 3,
	})
	return svc, provider, store
}

func TestOTPService_Begin(t *testing.T) {
	ctx := context.Background()

	t.Run("stores challenge with provider order id and ttl", func(t *testing.T) {
		svc, provider, store := newOTPServiceForTest(t)
		provider.SendFunc = func(ctx context.Context, mobile string) (string, error) {
			return "VE_abc123", nil
		}

		orderID, err := svc.Begin(ctx, "9876543210")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderID != "VE_abc123" {
			t.Errorf("expected order id VE_abc123, got %s", orderID)
		}

		challenge, err := store.Get(ctx, "9876543210")
		if err != nil {
			t.Fatalf("expected stored challenge, got %v", err)
		}
		if challenge.OrderID != "VE_abc123" {
			t.Errorf("expected stored order id VE_abc123, got %s", challenge.OrderID)
		}
		if ttl, ok := store.TTL("9876543210"); !ok || ttl != 5*time.Minute {
			t.Errorf("expected challenge ttl 5m, got %v (present=%v)", ttl, ok)
		}
	})

	t.Run("provider failure stores nothing", func(t *testing.T) {
		svc, provider, store := newOTPServiceForTest(t)
		provider.SendFunc = func(ctx context.Context, mobile string) (string, error) {
			return "", domain.ErrProviderSend
		}

		if _, err := svc.Begin(ctx, "9876543210"); !errors.Is(err, domain.ErrProviderSend) {
			t.Fatalf("expected ErrProviderSend, got %v", err)
		}
		if _, err := store.Get(ctx, "9876543210"); !errors.Is(err, domain.ErrNoChallenge) {
			t.Errorf("expected no challenge after provider failure, got %v", err)
		}
	})

	t.Run("new send replaces prior challenge and resets attempts", func(t *testing.T) {
		svc, provider, store := newOTPServiceForTest(t)
		orders := []string{"VE_first", "VE_second"}
		provider.SendFunc = func(ctx context.Context, mobile string) (string, error) {
			order := orders[0]
			orders = orders[1:]
			return order, nil
		}
		provider.CheckFunc = func(ctx context.Context, mobile, code string) (bool, error) {
			return false, nil
		}

		if _, err := svc.Begin(ctx, "9876543210"); err != nil {
			t.Fatalf("first begin: %v", err)
		}
		// Burn two attempts against the first challenge.
		for i := 0; i < 2; i++ {
			if err := svc.Verify(ctx, "9876543210", "0000"); !errors.Is(err, domain.ErrOTPInvalid) {
				t.Fatalf("expected ErrOTPInvalid, got %v", err)
			}
		}

		if _, err := svc.Begin(ctx, "9876543210"); err != nil {
			t.Fatalf("second begin: %v", err)
		}
		challenge, err := store.Get(ctx, "9876543210")
		if err != nil {
			t.Fatalf("expected replaced challenge, got %v", err)
		}
		if challenge.OrderID != "VE_second" {
			t.Errorf("expected order id VE_second, got %s", challenge.OrderID)
		}

		// Counter was reset: three more wrong attempts are allowed before lockout.
		for i := 0; i < 3; i++ {
			if err := svc.Verify(ctx, "9876543210", "0000"); !errors.Is(err, domain.ErrOTPInvalid) {
				t.Fatalf("attempt %d: expected ErrOTPInvalid, got %v", i+1, err)
			}
		}
		if err := svc.Verify(ctx, "9876543210", "0000"); !errors.Is(err, domain.ErrOTPMaxAttempts) {
			t.Errorf("expected ErrOTPMaxAttempts after reset counter exhausted, got %v", err)
		}
	})
}

func TestOTPService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("correct code consumes the challenge", func(t *testing.T) {
		svc, provider, store := newOTPServiceForTest(t)
		provider.CheckFunc = func(ctx context.Context, mobile, code string) (bool, error) {
			return code == "4321", nil
		}

		if _, err := svc.Begin(ctx, "9876543210"); err != nil {
			t.Fatalf("begin: %v", err)
		}
		if err := svc.Verify(ctx, "9876543210", "4321"); err != nil {
			t.Fatalf("expected success, got %v", err)
		}

		// One-time use: the challenge is gone.
		if _, err := store.Get(ctx, "9876543210"); !errors.Is(err, domain.ErrNoChallenge) {
			t.Errorf("expected consumed challenge, got %v", err)
		}
		if err := svc.Verify(ctx, "9876543210", "4321"); !errors.Is(err, domain.ErrNoChallenge) {
			t.Errorf("expected ErrNoChallenge on replay, got %v", err)
		}
	})

	t.Run("verify without challenge fails", func(t *testing.T) {
		svc, _, _ := newOTPServiceForTest(t)
		if err := svc.Verify(ctx, "9876543210", "1234"); !errors.Is(err, domain.ErrNoChallenge) {
			t.Errorf("expected ErrNoChallenge, got %v", err)
		}
	})

	t.Run("expired challenge fails verification", func(t *testing.T) {
		svc, _, store := newOTPServiceForTest(t)
		if _, err := svc.Begin(ctx, "9876543210"); err != nil {
			t.Fatalf("begin: %v", err)
		}
		store.ExpireNow("9876543210")

		if err := svc.Verify(ctx, "9876543210", "1234"); !errors.Is(err, domain.ErrNoChallenge) {
			t.Errorf("expected ErrNoChallenge after expiry, got %v", err)
		}
	})

	t.Run("fourth attempt is rejected regardless of code", func(t *testing.T) {
		svc, provider, _ := newOTPServiceForTest(t)
		provider.CheckFunc = func(ctx context.Context, mobile, code string) (bool, error) {
			return code == "4321", nil
		}

		if _, err := svc.Begin(ctx, "9876543210"); err != nil {
			t.Fatalf("begin: %v", err)
		}
		for i := 0; i < 3; i++ {
			if err := svc.Verify(ctx, "9876543210", "0000"); !errors.Is(err, domain.ErrOTPInvalid) {
				t.Fatalf("attempt %d: expected ErrOTPInvalid, got %v", i+1, err)
			}
		}

		// Even the correct code is refused once attempts are exhausted.
		if err := svc.Verify(ctx, "9876543210", "4321"); !errors.Is(err, domain.ErrOTPMaxAttempts) {
			t.Errorf("expected ErrOTPMaxAttempts, got %v", err)
		}
		if provider.CheckCalls != 3 {
			t.Errorf("expected provider check not called on exhausted attempt, got %d calls", provider.CheckCalls)
		}
	})

	t.Run("hammering a number with no challenge reports no challenge every time", func(t *testing.T) {
		svc, provider, _ := newOTPServiceForTest(t)
		for i := 0; i < 5; i++ {
			if err := svc.Verify(ctx, "9876543210", "0000"); !errors.Is(err, domain.ErrNoChallenge) {
				t.Fatalf("call %d: expected ErrNoChallenge, got %v", i+1, err)
			}
		}
		if provider.CheckCalls != 0 {
			t.Errorf("provider must not be called without a challenge, got %d calls", provider.CheckCalls)
		}
	})

	t.Run("provider error does not spend an attempt", func(t *testing.T) {
		svc, provider, _ := newOTPServiceForTest(t)
		failures := 2
		provider.CheckFunc = func(ctx context.Context, mobile, code string) (bool, error) {
			if failures > 0 {
				failures--
				return false, domain.ErrProviderSend
			}
			return false, nil
		}

		if _, err := svc.Begin(ctx, "9876543210"); err != nil {
			t.Fatalf("begin: %v", err)
		}
		for i := 0; i < 2; i++ {
			if err := svc.Verify(ctx, "9876543210", "0000"); !errors.Is(err, domain.ErrProviderSend) {
				t.Fatalf("expected ErrProviderSend, got %v", err)
			}
		}

		// All three real attempts are still available after the outages.
		for i := 0; i < 3; i++ {
			if err := svc.Verify(ctx, "9876543210", "0000"); !errors.Is(err, domain.ErrOTPInvalid) {
				t.Fatalf("attempt %d: expected ErrOTPInvalid, got %v", i+1, err)
			}
		}
		if err := svc.Verify(ctx, "9876543210", "0000"); !errors.Is(err, domain.ErrOTPMaxAttempts) {
			t.Errorf("expected ErrOTPMaxAttempts, got %v", err)
		}
	})

	t.Run("provider error is propagated without consuming the challenge", func(t *testing.T) {
		svc, provider, store := newOTPServiceForTest(t)
		provider.CheckFunc = func(ctx context.Context, mobile, code string) (bool, error) {
			return false, domain.ErrProviderSend
		}

		if _, err := svc.Begin(ctx, "9876543210"); err != nil {
			t.Fatalf("begin: %v", err)
		}
		if err := svc.Verify(ctx, "9876543210", "1234"); !errors.Is(err, domain.ErrProviderSend) {
			t.Fatalf("expected ErrProviderSend, got %v", err)
		}
		if _, err := store.Get(ctx, "9876543210"); err != nil {
			t.Errorf("challenge should survive a provider error, got %v", err)
		}
	})
}
