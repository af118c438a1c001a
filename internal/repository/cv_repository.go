package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/application"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/user"
)

type GormCVRepository struct {
	db *gorm.DB
}

var _ application.CVRepository = (*GormCVRepository)(nil)

func NewGormCVRepository(db *gorm.DB) *GormCVRepository {
	return &GormCVRepository{db: db}
}

func (r *GormCVRepository) EnsurePlaceholder(ctx context.Context, userID uuid.UUID) (application.CV, error) {
	var m cvModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Take(&m).Error
	if err == nil {
		return m.toDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return application.CV{}, err
	}

	m = cvModel{
		ID:              uuid.New(),
		UserID:          userID,
		OriginalText:    application.PlaceholderCVText,
		Skills:          pq.StringArray{},
		ExperienceYears: 0,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isForeignKeyViolation(err) {
			return application.CV{}, user.ErrNotFound
		}
		return application.CV{}, err
	}
	return m.toDomain(), nil
}
