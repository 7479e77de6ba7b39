package contracts

import (
	"context"
	"riraku-service/internal/app/models"
)

// ProfileRepository persists opted-in contact profiles for reuse.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.ContactProfile) error
	FindByPhone(ctx context.Context, phone string) (*models.ContactProfile, error)
}
