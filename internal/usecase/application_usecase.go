package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/application"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/user"
)

const statusFilterAll = "ALL"

type RecordDecisionInput struct {
	UserID uuid.UUID
	JobID  string
	Action string
	Job    job.Metadata
}

// DecisionResult carries the created application on apply. On reject
// Application is nil and only the acknowledgment is set.
type DecisionResult struct {
	Decision    application.Decision
	Application *application.Application
	Message     string
}

// ApplicationNotifier is told about new applications. Implementations must
// not block.
type ApplicationNotifier interface {
	ApplicationCreated(userID uuid.UUID, app application.Application, stats application.Stats)
}

type ApplicationUsecase interface {
	RecordDecision(ctx context.Context, in RecordDecisionInput) (DecisionResult, error)
	ListApplications(ctx context.Context, userID uuid.UUID, statusFilter string) ([]application.Application, error)
	GetStats(ctx context.Context, userID uuid.UUID) (application.Stats, error)
}

type ApplicationDeps struct {
	Jobs         job.Repository
	Applications application.Repository
	CVs          application.CVRepository
	Profiles     user.ProfileRepository
	Cache        StatsCache
	CacheTTL     time.Duration
	Notifier     ApplicationNotifier
	Logger       zerolog.Logger
}

type Application struct {
	jobs     job.Repository
	apps     application.Repository
	cvs      application.CVRepository
	profiles user.ProfileRepository
	cache    StatsCache
	cacheTTL time.Duration
	notifier ApplicationNotifier
	logger   zerolog.Logger
	now      func() time.Time
}

var _ ApplicationUsecase = (*Application)(nil)

func NewApplicationUsecase(d ApplicationDeps) *Application {
	return &Application{
		jobs:     d.Jobs,
		apps:     d.Applications,
		cvs:      d.CVs,
		profiles: d.Profiles,
		cache:    d.Cache,
		cacheTTL: d.CacheTTL,
		notifier: d.Notifier,
		logger:   d.Logger.With().Str("component", "application_usecase").Logger(),
		now:      time.Now,
	}
}

func (u *Application) RecordDecision(ctx context.Context, in RecordDecisionInput) (DecisionResult, error) {
	decision, err := validateDecision(in)
	if err != nil {
		return DecisionResult{}, err
	}
	externalID := strings.TrimSpace(in.JobID)

	// The posting is refreshed on every swipe, reject included.
	posting, err := u.jobs.Upsert(ctx, job.NewPosting(job.SourceMock, externalID, in.Job))
	if err != nil {
		return DecisionResult{}, internalError("upsert job", err)
	}

	if decision == application.DecisionReject {
		return DecisionResult{Decision: decision, Message: "Job rejected"}, nil
	}

	_, err = u.apps.FindByUserAndJob(ctx, in.UserID, posting.ID)
	switch {
	case err == nil:
		return DecisionResult{}, ErrDuplicateApplication
	case !errors.Is(err, application.ErrNotFound):
		return DecisionResult{}, internalError("find application", err)
	}

	if _, err := u.profiles.Ensure(ctx, in.UserID); err != nil {
		return DecisionResult{}, storeError("ensure profile", err)
	}
	cv, err := u.cvs.EnsurePlaceholder(ctx, in.UserID)
	if err != nil {
		return DecisionResult{}, storeError("ensure cv", err)
	}

	created, err := u.apps.Create(ctx, application.Application{
		ID:        uuid.New(),
		UserID:    in.UserID,
		JobID:     posting.ID,
		CVID:      cv.ID,
		Status:    application.StatusSent,
		AppliedAt: u.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return DecisionResult{}, ErrDuplicateApplication
		}
		return DecisionResult{}, internalError("create application", err)
	}
	if created.Job == nil {
		created.Job = &posting
	}

	u.afterApply(ctx, created)

	return DecisionResult{Decision: decision, Application: &created, Message: "Application submitted successfully"}, nil
}

func (u *Application) afterApply(ctx context.Context, created application.Application) {
	key := StatsCacheKey(created.UserID)
	stats, err := u.countStats(ctx, created.UserID)
	if err != nil {
		u.logger.Warn().Err(err).Str("user_id", created.UserID.String()).Msg("stats after apply failed")
		u.dropStats(ctx, key)
		return
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, stats, u.cacheTTL); err != nil {
			u.logger.Warn().Err(err).Str("key", key).Msg("stats cache refresh failed")
			u.dropStats(ctx, key)
		}
	}
	if u.notifier != nil {
		u.notifier.ApplicationCreated(created.UserID, created, stats)
	}
}

func (u *Application) dropStats(ctx context.Context, key string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, key); err != nil {
		u.logger.Warn().Err(err).Str("key", key).Msg("stats cache invalidation failed")
	}
}

func (u *Application) ListApplications(ctx context.Context, userID uuid.UUID, statusFilter string) ([]application.Application, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	var status *application.Status
	f := strings.ToUpper(strings.TrimSpace(statusFilter))
	if f != "" && f != statusFilterAll {
		s := application.Status(f)
		if !s.Valid() {
			return nil, invalid("status", "unknown application status "+statusFilter)
		}
		status = &s
	}

	apps, err := u.apps.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, internalError("list applications", err)
	}
	if apps == nil {
		apps = []application.Application{}
	}
	return apps, nil
}

func (u *Application) GetStats(ctx context.Context, userID uuid.UUID) (application.Stats, error) {
	if userID == uuid.Nil {
		return application.Stats{}, ErrUnauthorized
	}

	key := StatsCacheKey(userID)
	if u.cache != nil {
		var cached application.Stats
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Debug().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		if hit {
			return cached, nil
		}
	}

	stats, err := u.countStats(ctx, userID)
	if err != nil {
		return application.Stats{}, err
	}

	if u.cache != nil {
		if _, err := u.cache.SetJSONIfAbsent(ctx, key, stats, u.cacheTTL); err != nil {
			u.logger.Debug().Err(err).Str("key", key).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (u *Application) countStats(ctx context.Context, userID uuid.UUID) (application.Stats, error) {
	counts, err := u.apps.CountByStatus(ctx, userID)
	if err != nil {
		return application.Stats{}, internalError("count applications", err)
	}
	return application.FoldStats(counts), nil
}

func validateDecision(in RecordDecisionInput) (application.Decision, error) {
	if in.UserID == uuid.Nil {
		return "", ErrUnauthorized
	}
	if strings.TrimSpace(in.JobID) == "" {
		return "", invalid("jobId", "is required")
	}

	d := application.Decision(strings.ToLower(strings.TrimSpace(in.Action)))
	if !d.Valid() {
		return "", invalid("action", "must be apply or reject")
	}

	md := in.Job
	required := []struct {
		field string
		value string
	}{
		{"jobData.title", md.Title},
		{"jobData.company", md.Company},
		{"jobData.location", md.Location},
		{"jobData.salary", md.Salary},
		{"jobData.type", md.Type},
		{"jobData.description", md.Description},
		{"jobData.companyLogo", md.CompanyLogo},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return "", invalid(r.field, "is required")
		}
	}
	return d, nil
}

func storeError(op string, err error) error {
	if errors.Is(err, user.ErrNotFound) {
		return ErrNotFound
	}
	return internalError(op, err)
}
