package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freight-manager/backend/internal/application/adapter"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository stores refresh tokens by SHA-256 digest; the raw token never reaches the database.
func NewRefreshTokenRepository(db *gorm.DB) adapter.RefreshTokenRepository {
	return &refreshTokenRepository{
		db: db,
	}
}

func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (r *refreshTokenRepository) Save(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	now := time.Now().UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND expires_at <= ?", userID, now).Delete(&model.RefreshTokenModel{}).Error
		if err != nil {
			return domainerror.NewStoreError("prune refresh tokens", err)
		}

		err = tx.Create(&model.RefreshTokenModel{
			ID:        uuid.New(),
			TokenHash: tokenDigest(token),
			UserID:    userID,
			ExpiresAt: expiresAt.UTC(),
			CreatedAt: now,
		}).Error
		if err != nil {
			return domainerror.NewStoreError("save refresh token", err)
		}
		return nil
	})
}

func (r *refreshTokenRepository) IsActive(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", tokenDigest(token), time.Now().UTC()).
		Count(&count).Error
	if err != nil {
		return false, domainerror.NewStoreError("check refresh token", err)
	}
	return count > 0, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenDigest(token)).
		Update("revoked_at", time.Now().UTC()).Error
	if err != nil {
		return domainerror.NewStoreError("revoke refresh token", err)
	}
	return nil
}
