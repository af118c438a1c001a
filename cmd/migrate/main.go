package main

import (
	"context"
	"flag"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/config"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database/gormdb"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database/migration"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database/postgres"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database/seeder"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/logger"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/repository"
)

func main() {
	seed := flag.Bool("seed", false, "load the mock job deck after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.App)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() { _ = db.Close() }()

	r := migration.Runner{Dir: cfg.Database.MigrationsDir, Logger: log}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("migrations up to date")

	if !*seed {
		return
	}

	g, err := gormdb.Open(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open gorm")
	}

	runner := seeder.Runner{
		Seeders: seeder.Defaults(repository.NewGormJobRepository(g)),
		Logger:  log,
	}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}
