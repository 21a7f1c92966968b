package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ecoride/helpdesk/internal/domain/user"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
	db "github.com/ecoride/helpdesk/internal/shared/db"
)

// ProfileRepository reads the profile directory maintained by the identity
// provider. It implements user.Directory and never writes.
type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.QueryMapper
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewQueryMapper(),
	}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID uint) (*user.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	profile := r.mapper.ProfileToDomain(&model)
	return &profile, nil
}
