package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/novera/models"
	sq "github.com/Masterminds/squirrel"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNovel(row rowScanner) (models.Novel, error) {
	var novel models.Novel
	err := row.Scan(
		&novel.ID,
		&novel.Title,
		&novel.Description,
		&novel.Author,
		&novel.Genre,
		&novel.Status,
		&novel.Rating,
		&novel.OwnerID,
	)
	return novel, err
}

func scanChapter(row rowScanner) (models.Chapter, error) {
	var (
		chapter   models.Chapter
		createdAt dbTime
	)
	err := row.Scan(
		&chapter.ID,
		&chapter.Title,
		&chapter.Content,
		&chapter.ChapterNumber,
		&createdAt,
		&chapter.NovelID,
	)
	chapter.CreatedAt = createdAt.Time
	return chapter, err
}

func scanStatus(row rowScanner) (models.UserNovelStatus, error) {
	var (
		status models.UserNovelStatus
		label  string
	)
	err := row.Scan(&status.ID, &status.UserID, &status.NovelID, &label)
	status.Status = models.ReadingStatus(label)
	return status, err
}

// selectNovel loads a single novel without its chapters.
func selectNovel(ctx context.Context, q queryer, b sq.StatementBuilderType, novelID int64) (models.Novel, error) {
	query, args, err := buildGetNovelQuery(b, novelID)
	if err != nil {
		return models.Novel{}, err
	}

	novel, err := scanNovel(q.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Novel{}, ErrNovelNotFound
	case err != nil:
		return models.Novel{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return novel, nil
}

// selectChapters loads the chapters of all given novels grouped by novel id.
// Each group is ordered by chapter number, then by id.
func selectChapters(ctx context.Context, q queryer, b sq.StatementBuilderType, novelIDs ...int64) (map[int64][]models.Chapter, error) {
	byNovel := make(map[int64][]models.Chapter, len(novelIDs))
	if len(novelIDs) == 0 {
		return byNovel, nil
	}

	query, args, err := buildListChaptersQuery(b, novelIDs...)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		byNovel[chapter.NovelID] = append(byNovel[chapter.NovelID], chapter)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return byNovel, nil
}

// attachChapters sets the Chapters of every novel, using an empty slice for
// novels that have none.
func attachChapters(novels []models.Novel, byNovel map[int64][]models.Chapter) {
	for i := range novels {
		chapters := byNovel[novels[i].ID]
		if chapters == nil {
			chapters = []models.Chapter{}
		}
		novels[i].Chapters = chapters
	}
}
