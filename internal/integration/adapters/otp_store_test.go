package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestOTPStore(t *testing.T, ttl time.Duration) *otpStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return &otpStore{client: client, ttl: ttl}
}

func TestOTPStoreGenerateAndVerify(t *testing.T) {
	ctx := context.Background()
	store := newTestOTPStore(t, 10*time.Minute)

	code, err := store.Generate(ctx, "Farmer@FarmLink.test")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("Generate() code = %q, want 6 digits", code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("Generate() code = %q, want digits only", code)
		}
	}

	// The lookup key is case insensitive on the email.
	ok, err := store.VerifyAndConsume(ctx, "farmer@farmlink.test", code)
	if err != nil {
		t.Fatalf("VerifyAndConsume() error = %v", err)
	}
	if !ok {
		t.Fatal("VerifyAndConsume() = false, want true")
	}

	// The code is consumed on first use.
	ok, err = store.VerifyAndConsume(ctx, "farmer@farmlink.test", code)
	if err != nil {
		t.Fatalf("VerifyAndConsume() second call error = %v", err)
	}
	if ok {
		t.Fatal("VerifyAndConsume() = true on second use, want false")
	}
}

func TestOTPStoreWrongCode(t *testing.T) {
	ctx := context.Background()
	store := newTestOTPStore(t, 10*time.Minute)

	code, err := store.Generate(ctx, "farmer@farmlink.test")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	ok, err := store.VerifyAndConsume(ctx, "farmer@farmlink.test", wrong)
	if err != nil {
		t.Fatalf("VerifyAndConsume() error = %v", err)
	}
	if ok {
		t.Fatal("VerifyAndConsume() = true for wrong code, want false")
	}

	// A failed attempt does not consume the stored code.
	ok, err = store.VerifyAndConsume(ctx, "farmer@farmlink.test", code)
	if err != nil {
		t.Fatalf("VerifyAndConsume() error = %v", err)
	}
	if !ok {
		t.Fatal("VerifyAndConsume() = false for correct code after failed attempt, want true")
	}
}

func TestOTPStoreUnknownEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestOTPStore(t, 10*time.Minute)

	ok, err := store.VerifyAndConsume(ctx, "nobody@farmlink.test", "123456")
	if err != nil {
		t.Fatalf("VerifyAndConsume() error = %v", err)
	}
	if ok {
		t.Fatal("VerifyAndConsume() = true without a generated code, want false")
	}
}

func TestOTPStoreExpiry(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	store := &otpStore{client: client, ttl: time.Minute}

	code, err := store.Generate(ctx, "farmer@farmlink.test")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	ok, err := store.VerifyAndConsume(ctx, "farmer@farmlink.test", code)
	if err != nil {
		t.Fatalf("VerifyAndConsume() error = %v", err)
	}
	if ok {
		t.Fatal("VerifyAndConsume() = true after expiry, want false")
	}
}

func TestOTPStoreRegenerateReplacesCode(t *testing.T) {
	ctx := context.Background()
	store := newTestOTPStore(t, 10*time.Minute)

	first, err := store.Generate(ctx, "farmer@farmlink.test")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := store.Generate(ctx, "farmer@farmlink.test")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if first != second {
		ok, err := store.VerifyAndConsume(ctx, "farmer@farmlink.test", first)
		if err != nil {
			t.Fatalf("VerifyAndConsume() error = %v", err)
		}
		if ok {
			t.Fatal("VerifyAndConsume() = true for replaced code, want false")
		}
	}

	ok, err := store.VerifyAndConsume(ctx, "farmer@farmlink.test", second)
	if err != nil {
		t.Fatalf("VerifyAndConsume() error = %v", err)
	}
	if !ok {
		t.Fatal("VerifyAndConsume() = false for latest code, want true")
	}
}
