package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/user"
)

type GormProfileRepository struct {
	db *gorm.DB
}

var _ user.ProfileRepository = (*GormProfileRepository)(nil)

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	var m profileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&m).Error; err != nil {
		return user.Profile{}, translate(err, user.ErrNotFound)
	}
	return m.toDomain(), nil
}

func (r *GormProfileRepository) Ensure(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	now := time.Now().UTC()
	m := profileModel{
		ID:          uuid.New(),
		UserID:      userID,
		Preferences: datatypes.JSON(`{}`),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&m).Error
	if err != nil {
		if isForeignKeyViolation(err) {
			return user.Profile{}, user.ErrNotFound
		}
		return user.Profile{}, err
	}
	return r.GetByUserID(ctx, userID)
}

func (r *GormProfileRepository) UpdateContact(ctx context.Context, userID uuid.UUID, location, linkedInURL *string) (user.Profile, error) {
	if _, err := r.Ensure(ctx, userID); err != nil {
		return user.Profile{}, err
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if location != nil {
		updates["location"] = *location
	}
	if linkedInURL != nil {
		updates["linkedin_url"] = *linkedInURL
	}

	err := r.db.WithContext(ctx).
		Model(&profileModel{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
	if err != nil {
		return user.Profile{}, err
	}
	return r.GetByUserID(ctx, userID)
}
