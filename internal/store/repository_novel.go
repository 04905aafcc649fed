package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/models"
)

// novelRepository is the SQL-backed implementation of [NovelRepository].
//
// Reads and writes that touch both the "novels" and "chapters" tables run
// inside a single transaction so the returned novel and its chapters are
// consistent with each other.
type novelRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNovelRepository constructs a [NovelRepository] backed by the provided
// database connection and logger.
func NewNovelRepository(db *DB, logger *logger.Logger) NovelRepository {
	logger.Debug().Msg("creating novel repository")
	return &novelRepository{
		db:     db,
		logger: logger,
	}
}

// ListNovels returns a page of novels ordered by id, each with its chapters.
// An offset past the end yields an empty slice.
func (r *novelRepository) ListNovels(ctx context.Context, offset, limit uint64) ([]models.Novel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNovelsQuery(r.db.builder, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.ListNovels").Msg("failed to build query")
		return nil, err
	}

	novels := make([]models.Novel, 0)
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		ids := make([]int64, 0)
		for rows.Next() {
			novel, err := scanNovel(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			novels = append(novels, novel)
			ids = append(ids, novel.ID)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rows.Close()

		byNovel, err := selectChapters(ctx, tx, r.db.builder, ids...)
		if err != nil {
			return err
		}
		attachChapters(novels, byNovel)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.ListNovels").
			Uint64("offset", offset).
			Uint64("limit", limit).
			Msg("error listing novels")
		return nil, err
	}

	return novels, nil
}

// GetNovel returns the novel with its chapters or [ErrNovelNotFound].
func (r *novelRepository) GetNovel(ctx context.Context, novelID int64) (models.Novel, error) {
	log := logger.FromContext(ctx)

	var novel models.Novel
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		if novel, err = selectNovel(ctx, tx, r.db.builder, novelID); err != nil {
			return err
		}
		return r.loadChapters(ctx, tx, &novel)
	})
	if err != nil {
		if !errors.Is(err, ErrNovelNotFound) {
			log.Err(err).Str("func", "*novelRepository.GetNovel").Int64("novel_id", novelID).Msg("error getting novel")
		}
		return models.Novel{}, err
	}

	return novel, nil
}

// CreateNovel stores a novel owned by ownerID. Missing status and rating
// receive their defaults. The new novel has no chapters.
func (r *novelRepository) CreateNovel(ctx context.Context, input models.NovelInput, ownerID int64) (models.Novel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNovelQuery(r.db.builder, input.WithDefaults(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.CreateNovel").Msg("failed to build query")
		return models.Novel{}, err
	}

	novel, err := scanNovel(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.CreateNovel").
			Int64("owner_id", ownerID).
			Stringer("classification", r.db.classify(err)).
			Msg("error creating novel")
		return models.Novel{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	novel.Chapters = []models.Chapter{}

	return novel, nil
}

// UpdateNovel replaces every mutable field of the novel with input; omitted
// status and rating are reset to their defaults. A missing novel yields
// [ErrNovelNotFound] and nothing is written.
func (r *novelRepository) UpdateNovel(ctx context.Context, novelID int64, input models.NovelInput) (models.Novel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNovelQuery(r.db.builder, novelID, input.WithDefaults())
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.UpdateNovel").Msg("failed to build query")
		return models.Novel{}, err
	}

	var novel models.Novel
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		novel, err = scanNovel(tx.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrNovelNotFound
		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return r.loadChapters(ctx, tx, &novel)
	})
	if err != nil {
		if !errors.Is(err, ErrNovelNotFound) {
			log.Err(err).Str("func", "*novelRepository.UpdateNovel").Int64("novel_id", novelID).Msg("error updating novel")
		}
		return models.Novel{}, err
	}

	return novel, nil
}

// DeleteNovel removes the novel and returns its state, chapters included,
// as it was right before deletion. Chapters and reading statuses of the
// novel are removed by the database cascade.
func (r *novelRepository) DeleteNovel(ctx context.Context, novelID int64) (models.Novel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNovelQuery(r.db.builder, novelID)
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.DeleteNovel").Msg("failed to build query")
		return models.Novel{}, err
	}

	var novel models.Novel
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		if novel, err = selectNovel(ctx, tx, r.db.builder, novelID); err != nil {
			return err
		}
		if err = r.loadChapters(ctx, tx, &novel); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrNovelNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNovelNotFound) {
			log.Err(err).Str("func", "*novelRepository.DeleteNovel").Int64("novel_id", novelID).Msg("error deleting novel")
		}
		return models.Novel{}, err
	}

	return novel, nil
}

func (r *novelRepository) loadChapters(ctx context.Context, q queryer, novel *models.Novel) error {
	byNovel, err := selectChapters(ctx, q, r.db.builder, novel.ID)
	if err != nil {
		return err
	}
	novels := []models.Novel{*novel}
	attachChapters(novels, byNovel)
	*novel = novels[0]
	return nil
}
