package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/working2003/breedingo/domain"
)

// ChallengeStoreImpl implements domain.ChallengeStore using Redis. Redis
// owns expiry through key TTLs, so no cleanup timers are needed.
type ChallengeStoreImpl struct {
	client     *redis.Client
	prefix     string
	attPrefix  string
	defaultTTL time.Duration
}

// NewChallengeStore creates a new Redis-backed OTP challenge store
func NewChallengeStore(client *redis.Client, defaultTTL time.Duration) domain.ChallengeStore {
	return &ChallengeStoreImpl{
		client:     client,
		prefix:     "otp:chal:",
		attPrefix:  "otp:att:",
		defaultTTL: defaultTTL,
	}
}

// Put implements domain.ChallengeStore. Any prior challenge for the mobile
// number is replaced and its attempt counter reset.
func (r *ChallengeStoreImpl) Put(ctx context.Context, challenge *domain.OTPChallenge, ttl time.Duration) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	if err := r.client.Set(ctx, r.prefix+challenge.MobileNumber, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}
	if err := r.client.Set(ctx, r.attPrefix+challenge.MobileNumber, 0, ttl).Err(); err != nil {
		return fmt.Errorf("failed to reset attempts counter: %w", err)
	}
	return nil
}

// Get implements domain.ChallengeStore
func (r *ChallengeStoreImpl) Get(ctx context.Context, mobile string) (*domain.OTPChallenge, error) {
	data, err := r.client.Get(ctx, r.prefix+mobile).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNoChallenge
		}
		return nil, err
	}

	var challenge domain.OTPChallenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}
	return &challenge, nil
}

// IncrAttempts implements domain.ChallengeStore. INCR is atomic, so two
// concurrent verifications cannot both observe the same attempt number.
func (r *ChallengeStoreImpl) IncrAttempts(ctx context.Context, mobile string) (int64, error) {
	attempts, err := r.client.Incr(ctx, r.attPrefix+mobile).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempts: %w", err)
	}
	if attempts == 1 {
		// Counter was recreated after expiry; give it a bounded lifetime.
		r.client.Expire(ctx, r.attPrefix+mobile, r.defaultTTL)
	}
	return attempts, nil
}

// DecrAttempts implements domain.ChallengeStore. Refunds an attempt that was
// counted but never became a completed provider check.
func (r *ChallengeStoreImpl) DecrAttempts(ctx context.Context, mobile string) error {
	if err := r.client.Decr(ctx, r.attPrefix+mobile).Err(); err != nil {
		return fmt.Errorf("failed to decrement attempts: %w", err)
	}
	return nil
}

// Delete implements domain.ChallengeStore
func (r *ChallengeStoreImpl) Delete(ctx context.Context, mobile string) error {
	return r.client.Del(ctx, r.prefix+mobile, r.attPrefix+mobile).Err()
}
