package store

import (
	"context"

	"github.com/MKhiriev/novera/internal/logger"
)

// Storages aggregates every repository over one database handle.
type Storages struct {
	UserRepository    UserRepository
	NovelRepository   NovelRepository
	ChapterRepository ChapterRepository
	StatusRepository  StatusRepository

	db *DB
}

// NewStorages builds all repositories on top of db. Storages takes ownership
// of db: [Storages.Close] closes it.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		NovelRepository:   NewNovelRepository(db, logger),
		ChapterRepository: NewChapterRepository(db, logger),
		StatusRepository:  NewStatusRepository(db, logger),
		db:                db,
	}
}

// Ping verifies that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
