package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const resetTokenTTL = 15 * time.Minute

// generateSecureToken generates a secure random token of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func generateSecureToken(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(token) > length {
		token = token[:length]
	}
	return token, nil
}

func resetKey(email string) string {
	return fmt.Sprintf("pwreset:%s", email)
}

// IssueResetToken generates a password reset token for the given email and
// stores it in the OTP cache with a 15-minute TTL. Re-issuing replaces any
// outstanding token.
func IssueResetToken(ctx context.Context, email string) (string, error) {
	token, err := generateSecureToken(24)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	client := GetOTPCacheClient()
	if err := client.Set(ctx, resetKey(email), HashToken(token), resetTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// ConsumeResetToken validates a reset token for the given email and deletes it
// so it can only be used once.
func ConsumeResetToken(ctx context.Context, email, token string) error {
	client := GetOTPCacheClient()
	stored, err := client.Get(ctx, resetKey(email)).Result()
	if err == redis.Nil {
		return fmt.Errorf("reset token expired or not found")
	}
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if stored != HashToken(token) {
		return fmt.Errorf("reset token mismatch")
	}
	if err := client.Del(ctx, resetKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate reset token: %w", err)
	}
	return nil
}
