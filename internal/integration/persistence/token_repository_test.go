package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

func TestRefreshTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	userID := uuid.New()

	t.Run("stores only the digest", func(t *testing.T) {
		if err := repo.Save(ctx, "token-a", userID, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var stored model.RefreshTokenModel
		if err := db.Where("user_id = ?", userID).First(&stored).Error; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.TokenHash == "token-a" || len(stored.TokenHash) != 64 {
			t.Errorf("expected a sha256 digest, got %q", stored.TokenHash)
		}

		active, err := repo.IsActive(ctx, "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !active {
			t.Error("expected the saved token to be active")
		}
	})

	t.Run("revoked token is inactive", func(t *testing.T) {
		if err := repo.Revoke(ctx, "token-a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		active, err := repo.IsActive(ctx, "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if active {
			t.Error("expected the revoked token to be inactive")
		}
	})

	t.Run("expired tokens are inactive and pruned", func(t *testing.T) {
		if err := repo.Save(ctx, "token-old", userID, time.Now().Add(-time.Minute)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		active, err := repo.IsActive(ctx, "token-old")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if active {
			t.Error("expected the expired token to be inactive")
		}

		if err := repo.Save(ctx, "token-b", userID, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var count int64
		db.Model(&model.RefreshTokenModel{}).Where("token_hash = ?", tokenDigest("token-old")).Count(&count)
		if count != 0 {
			t.Errorf("expected the expired token to be pruned, found %d", count)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		active, err := repo.IsActive(ctx, "never-issued")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if active {
			t.Error("expected an unknown token to be inactive")
		}
	})
}
