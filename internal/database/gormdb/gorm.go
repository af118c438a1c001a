package gormdb

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database"
)

// Open wraps the pool's database/sql handle in gorm. The pool stays owned by
// the caller; closing it closes gorm too.
func Open(db database.DB, logger zerolog.Logger) (*gorm.DB, error) {
	if db == nil || db.SQLDB() == nil {
		return nil, database.ErrNilDB
	}

	g, err := gorm.Open(postgres.New(postgres.Config{Conn: db.SQLDB()}), &gorm.Config{
		Logger:                 NewLogger(logger),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return g, nil
}
