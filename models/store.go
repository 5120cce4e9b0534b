package models

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Store is the gorm-backed UnitOfWork.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repositoriesFor(tx))
	})
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repositoriesFor(tx))
	}, &sql.TxOptions{ReadOnly: true})
}

// Ping checks that the underlying connection pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func repositoriesFor(db *gorm.DB) Repositories {
	return Repositories{
		Categories: NewCategoriesRepository(db),
		Products:   NewProductsRepository(db),
	}
}
