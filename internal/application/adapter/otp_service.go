package adapter

import "context"

// OTPService defines the interface for one-time password reset codes.
// Codes live in a keyed store with an explicit TTL per key, shareable
// across process instances.
type OTPService interface {
	// Generate creates a new one-time code for the email, replacing any
	// previous code, and stores it with the configured TTL.
	Generate(ctx context.Context, email string) (string, error)

	// VerifyAndConsume checks the code for the email and deletes it on
	// match, so a code can be used at most once. Returns false for a
	// wrong, expired or already-consumed code.
	VerifyAndConsume(ctx context.Context, email, code string) (bool, error)
}
