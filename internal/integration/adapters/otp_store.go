package adapters

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farmlink/backend/internal/application/adapter"
)

const otpKeyPrefix = "otp:reset:"

// otpStore implements adapter.OTPService on top of redis. Each code lives
// under a per-email key with a TTL, so codes expire on their own and a new
// code replaces the previous one.
type otpStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPStore creates a redis-backed OTP service with the given code TTL.
func NewOTPStore(client *redis.Client, ttl time.Duration) adapter.OTPService {
	return &otpStore{
		client: client,
		ttl:    ttl,
	}
}

// Generate creates a 6-digit code for the email and stores it with the TTL.
func (s *otpStore) Generate(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := s.client.Set(ctx, s.key(email), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store code: %w", err)
	}
	return code, nil
}

// VerifyAndConsume checks the stored code and deletes it on match.
func (s *otpStore) VerifyAndConsume(ctx context.Context, email, code string) (bool, error) {
	key := s.key(email)

	stored, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read code: %w", err)
	}

	if stored != code {
		return false, nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, fmt.Errorf("failed to consume code: %w", err)
	}
	return true, nil
}

func (s *otpStore) key(email string) string {
	return otpKeyPrefix + strings.ToLower(email)
}
