package gormdb

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

// EnsureModelColumns reports every column the row model maps that the live
// table lacks. Relation fields have no column and are skipped.
func EnsureModelColumns(ctx context.Context, g *gorm.DB, model any) error {
	if g == nil {
		return errors.New("gormdb: nil gorm db")
	}

	stmt := &gorm.Statement{DB: g}
	if err := stmt.Parse(model); err != nil {
		return fmt.Errorf("parse model: %w", err)
	}
	table := stmt.Schema.Table

	m := g.WithContext(ctx).Migrator()
	if !m.HasTable(model) {
		return fmt.Errorf("%w: missing table %s", ErrSchemaMismatch, table)
	}

	var missing []string
	for _, f := range stmt.Schema.Fields {
		if f.DBName == "" {
			continue
		}
		if !m.HasColumn(model, f.DBName) {
			missing = append(missing, f.DBName)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: table %s is missing columns %v", ErrSchemaMismatch, table, missing)
	}
	return nil
}
