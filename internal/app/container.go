package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/config"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database/gormdb"
	dbpostgres "github.com/swipeforjobs-ireland/swipeforjobs/internal/database/postgres"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/infrastructure/cache"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/infrastructure/persistence/postgres"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/jwt"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/repository"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/ws"
)

// Container owns every process-lifetime resource. Nothing is global; Close
// releases them in reverse order of construction.
type Container struct {
	Config config.Config
	Logger zerolog.Logger

	DB    database.DB
	Gorm  *gorm.DB
	Cache *cache.Redis
	Hub   *ws.Hub
	JWT   jwt.Service

	Jobs         *repository.GormJobRepository
	Applications *repository.GormApplicationRepository
	CVs          *repository.GormCVRepository
	Profiles     *repository.GormProfileRepository
	Users        *postgres.UserRepository

	AuthUsecase        *usecase.Auth
	UserUsecase        *usecase.User
	ApplicationUsecase *usecase.Application
	JobListUsecase     *usecase.JobList
}

func NewContainer(cfg config.Config, logger zerolog.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	g, err := gormdb.Open(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Gorm:   g,
		Cache:  cache.NewRedis(ctx, cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
	}
	go c.Hub.Run()

	c.Jobs = repository.NewGormJobRepository(g)
	c.Applications = repository.NewGormApplicationRepository(g)
	c.CVs = repository.NewGormCVRepository(g)
	c.Profiles = repository.NewGormProfileRepository(g)
	c.Users = postgres.NewUserRepository(db)

	c.AuthUsecase = usecase.NewAuthUsecase(c.Users, c.Profiles, c.JWT)
	c.UserUsecase = usecase.NewUserUsecase(c.Users, c.Profiles)
	c.JobListUsecase = usecase.NewJobListUsecase(c.Jobs)
	c.ApplicationUsecase = usecase.NewApplicationUsecase(usecase.ApplicationDeps{
		Jobs:         c.Jobs,
		Applications: c.Applications,
		CVs:          c.CVs,
		Profiles:     c.Profiles,
		Cache:        c.Cache,
		CacheTTL:     cfg.Redis.TTL,
		Notifier:     ws.NewNotifier(c.Hub),
		Logger:       logger,
	})

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	c.Hub.Stop()
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
