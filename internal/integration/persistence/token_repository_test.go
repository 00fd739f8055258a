package persistence

import (
	"testing"
	"time"

	"github.com/farmlink/backend/internal/domain/entity"
)

func TestTokenRepositoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)
	expiresAt := time.Now().UTC().Add(time.Hour)

	if err := repo.SaveRefreshToken(testCtx, "token-1", user.ID, expiresAt); err != nil {
		t.Fatalf("SaveRefreshToken() error = %v", err)
	}

	valid, err := repo.IsRefreshTokenValid(testCtx, "token-1")
	if err != nil {
		t.Fatalf("IsRefreshTokenValid() error = %v", err)
	}
	if !valid {
		t.Error("IsRefreshTokenValid() = false, want true")
	}

	if err := repo.InvalidateRefreshToken(testCtx, "token-1"); err != nil {
		t.Fatalf("InvalidateRefreshToken() error = %v", err)
	}

	valid, err = repo.IsRefreshTokenValid(testCtx, "token-1")
	if err != nil {
		t.Fatalf("IsRefreshTokenValid() error = %v", err)
	}
	if valid {
		t.Error("IsRefreshTokenValid() = true after invalidation, want false")
	}
}

func TestTokenRepositoryExpiredTokenIsInvalid(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)

	if err := repo.SaveRefreshToken(testCtx, "stale", user.ID, time.Now().UTC().Add(-time.Minute)); err != nil {
		t.Fatalf("SaveRefreshToken() error = %v", err)
	}

	valid, err := repo.IsRefreshTokenValid(testCtx, "stale")
	if err != nil {
		t.Fatalf("IsRefreshTokenValid() error = %v", err)
	}
	if valid {
		t.Error("IsRefreshTokenValid() = true for expired token, want false")
	}
}

func TestTokenRepositoryInvalidateAllUserTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)
	other := seedUser(t, db, "buyer@farmlink.test", entity.UserRoleBuyer)
	expiresAt := time.Now().UTC().Add(time.Hour)

	for _, token := range []string{"a", "b"} {
		if err := repo.SaveRefreshToken(testCtx, token, user.ID, expiresAt); err != nil {
			t.Fatalf("SaveRefreshToken() error = %v", err)
		}
	}
	if err := repo.SaveRefreshToken(testCtx, "c", other.ID, expiresAt); err != nil {
		t.Fatalf("SaveRefreshToken() error = %v", err)
	}

	if err := repo.InvalidateAllUserRefreshTokens(testCtx, user.ID); err != nil {
		t.Fatalf("InvalidateAllUserRefreshTokens() error = %v", err)
	}

	for _, token := range []string{"a", "b"} {
		valid, err := repo.IsRefreshTokenValid(testCtx, token)
		if err != nil {
			t.Fatalf("IsRefreshTokenValid(%q) error = %v", token, err)
		}
		if valid {
			t.Errorf("IsRefreshTokenValid(%q) = true, want false", token)
		}
	}

	valid, err := repo.IsRefreshTokenValid(testCtx, "c")
	if err != nil {
		t.Fatalf("IsRefreshTokenValid(c) error = %v", err)
	}
	if !valid {
		t.Error("other user's token was invalidated")
	}
}
