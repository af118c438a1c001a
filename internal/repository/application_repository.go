package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/application"
)

type GormApplicationRepository struct {
	db *gorm.DB
}

var _ application.Repository = (*GormApplicationRepository)(nil)

func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

func (r *GormApplicationRepository) FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (application.Application, error) {
	var m applicationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Take(&m).Error
	if err != nil {
		return application.Application{}, translate(err, application.ErrNotFound)
	}
	return m.toDomain(), nil
}

func (r *GormApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	now := time.Now().UTC()
	m := applicationModel{
		ID:        a.ID,
		UserID:    a.UserID,
		JobID:     a.JobID,
		CVID:      a.CVID,
		Status:    string(a.Status),
		AppliedAt: a.AppliedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = string(application.StatusSent)
	}
	if m.AppliedAt.IsZero() {
		m.AppliedAt = now
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return application.Application{}, application.ErrDuplicate
		}
		return application.Application{}, err
	}

	var created applicationModel
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Responses").
		Take(&created, "id = ?", m.ID).Error
	if err != nil {
		return application.Application{}, translate(err, application.ErrNotFound)
	}
	return created.toDomain(), nil
}

func (r *GormApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *application.Status) ([]application.Application, error) {
	q := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("received_at ASC")
		}).
		Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var ms []applicationModel
	if err := q.Order("applied_at DESC").Order("id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]application.Application, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toDomain())
	}
	return out, nil
}

type statusCount struct {
	Status string
	Count  int64
}

func (r *GormApplicationRepository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[application.Status]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[application.Status]int64, len(rows))
	for _, row := range rows {
		out[application.Status(row.Status)] += row.Count
	}
	return out, nil
}
