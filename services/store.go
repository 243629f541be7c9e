// Package services implements store.Store on top of GORM, split across one
// file per resource.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// resetTables empties the given tables and restarts their id sequences so a
// reset store hands out ids from 1 again.
func (s *Store) resetTables(ctx context.Context, tables ...string) error {
	if s.db.Dialector.Name() == "sqlite" {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, table := range tables {
				if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
					return err
				}
				// sqlite_sequence keeps AUTOINCREMENT counters across
				// deletes, and only exists once a row has been inserted.
				err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
				if err != nil && !strings.Contains(err.Error(), "no such table") {
					return err
				}
			}
			return nil
		})
	}
	return s.db.WithContext(ctx).
		Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error
}
