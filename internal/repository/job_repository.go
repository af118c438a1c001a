package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database/gormdb"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
)

const (
	defaultListLimit = 20
	maxListLimit     = 50
)

// Columns refreshed when a posting is seen again. Requirements, benefits,
// logo, url, source and external id keep their first-insert values.
var jobUpsertColumns = []string{
	"title",
	"company",
	"location",
	"description",
	"salary_range",
	"employment_type",
	"employment_type_raw",
	"updated_at",
}

type GormJobRepository struct {
	db *gorm.DB
}

var _ job.Repository = (*GormJobRepository)(nil)

func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// VerifySchema checks the jobs table against the row model this repository
// writes.
func (r *GormJobRepository) VerifySchema(ctx context.Context) error {
	return gormdb.EnsureModelColumns(ctx, r.db, &jobModel{})
}

func (r *GormJobRepository) Upsert(ctx context.Context, p job.Posting) (job.Posting, error) {
	m := jobModelFrom(p)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	// INSERT .. ON CONFLICT DO UPDATE is a single statement, so concurrent
	// sightings of the same id converge instead of racing.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source_board"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns(jobUpsertColumns),
		}).
		Create(&m).Error
	if err != nil {
		return job.Posting{}, err
	}

	var stored jobModel
	err = r.db.WithContext(ctx).
		Where("source_board = ? AND external_id = ?", p.SourceBoard, p.ExternalID).
		Take(&stored).Error
	if err != nil {
		return job.Posting{}, translate(err, job.ErrNotFound)
	}
	return stored.toDomain(), nil
}

func (r *GormJobRepository) ListActive(ctx context.Context, limit, offset int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var ms []jobModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Order("external_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]job.Posting, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toDomain())
	}
	return out, nil
}
