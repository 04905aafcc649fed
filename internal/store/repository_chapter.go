package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/models"
)

// chapterRepository is the SQL-backed implementation of [ChapterRepository].
type chapterRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewChapterRepository(db *DB, logger *logger.Logger) ChapterRepository {
	logger.Debug().Msg("creating chapter repository")
	return &chapterRepository{
		db:     db,
		logger: logger,
	}
}

// CreateChapter appends a chapter to the novel. The database assigns the id
// and created_at. A missing novel yields [ErrNovelNotFound].
func (r *chapterRepository) CreateChapter(ctx context.Context, input models.ChapterInput, novelID int64) (models.Chapter, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateChapterQuery(r.db.builder, input, novelID)
	if err != nil {
		log.Err(err).Str("func", "*chapterRepository.CreateChapter").Msg("failed to build query")
		return models.Chapter{}, err
	}

	chapter, err := scanChapter(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*chapterRepository.CreateChapter").
			Int64("novel_id", novelID).
			Msg("error creating chapter")

		if r.db.classify(err) == ForeignKeyViolation {
			return models.Chapter{}, ErrNovelNotFound
		}
		return models.Chapter{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return chapter, nil
}

// ListChapters returns the chapters of a novel ordered by chapter number,
// then by id. A novel without chapters (or a missing novel) yields an empty slice.
func (r *chapterRepository) ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	byNovel, err := selectChapters(ctx, r.db, r.db.builder, novelID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*chapterRepository.ListChapters").
			Int64("novel_id", novelID).
			Msg("error listing chapters")
		return nil, err
	}

	chapters := byNovel[novelID]
	if chapters == nil {
		chapters = []models.Chapter{}
	}
	return chapters, nil
}
