package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/novera/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	novelRowColumns   = []string{"id", "title", "description", "author", "genre", "status", "rating", "owner_id"}
	chapterRowColumns = []string{"id", "title", "content", "chapter_number", "created_at", "novel_id"}
)

// ─────────────────────────────────────────────
// ListNovels
// ─────────────────────────────────────────────

func TestListNovels_AttachesChapters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM novels ORDER BY id ASC LIMIT 10 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows(novelRowColumns).
			AddRow(1, "Dune", "desert", "Herbert", "sci-fi", "Completed", 4.5, 3).
			AddRow(2, "Emma", nil, nil, nil, "Ongoing", 0.0, 4))
	mock.ExpectQuery(`SELECT (.+) FROM chapters WHERE novel_id IN \(\$1,\$2\)`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(chapterRowColumns).
			AddRow(10, "One", "text", 1, now, 1).
			AddRow(11, "Two", "text", 2, now, 1))
	mock.ExpectCommit()

	novels, err := repo.ListNovels(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, novels, 2)

	assert.Equal(t, "Dune", novels[0].Title)
	require.NotNil(t, novels[0].Author)
	assert.Equal(t, "Herbert", *novels[0].Author)
	assert.Len(t, novels[0].Chapters, 2)

	assert.Nil(t, novels[1].Description)
	assert.NotNil(t, novels[1].Chapters)
	assert.Empty(t, novels[1].Chapters)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNovels_EmptyPage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM novels ORDER BY id ASC LIMIT 100 OFFSET 500`).
		WillReturnRows(sqlmock.NewRows(novelRowColumns))
	mock.ExpectCommit()

	novels, err := repo.ListNovels(context.Background(), 500, 100)
	require.NoError(t, err)
	assert.NotNil(t, novels)
	assert.Empty(t, novels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNovels_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM novels").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.ListNovels(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNovels_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.ListNovels(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ─────────────────────────────────────────────
// GetNovel
// ─────────────────────────────────────────────

func TestGetNovel_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM novels WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(novelRowColumns).AddRow(5, "Dune", nil, nil, nil, "Ongoing", 0.0, 3))
	mock.ExpectQuery("SELECT (.+) FROM chapters").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(chapterRowColumns))
	mock.ExpectCommit()

	novel, err := repo.GetNovel(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), novel.ID)
	assert.Equal(t, int64(3), novel.OwnerID)
	assert.Empty(t, novel.Chapters)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNovel_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM novels").
		WillReturnRows(sqlmock.NewRows(novelRowColumns))
	mock.ExpectRollback()

	_, err := repo.GetNovel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNovelNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// CreateNovel
// ─────────────────────────────────────────────

func TestCreateNovel_AppliesDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectQuery("INSERT INTO novels").
		WithArgs("Dune", nil, nil, nil, models.DefaultNovelStatus, 0.0, int64(3)).
		WillReturnRows(sqlmock.NewRows(novelRowColumns).AddRow(1, "Dune", nil, nil, nil, "Ongoing", 0.0, 3))

	novel, err := repo.CreateNovel(context.Background(), models.NovelInput{Title: "Dune"}, 3)
	require.NoError(t, err)
	assert.Equal(t, "Ongoing", novel.Status)
	assert.Equal(t, 0.0, novel.Rating)
	assert.NotNil(t, novel.Chapters)
	assert.Empty(t, novel.Chapters)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNovel_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectQuery("INSERT INTO novels").WillReturnError(errors.New("boom"))

	_, err := repo.CreateNovel(context.Background(), models.NovelInput{Title: "Dune"}, 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// UpdateNovel
// ─────────────────────────────────────────────

func TestUpdateNovel_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE novels SET (.+) WHERE id = \$7`).
		WithArgs("New", "d", nil, nil, "Completed", 3.5, int64(1)).
		WillReturnRows(sqlmock.NewRows(novelRowColumns).AddRow(1, "New", "d", nil, nil, "Completed", 3.5, 3))
	mock.ExpectQuery("SELECT (.+) FROM chapters").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(chapterRowColumns).AddRow(2, "c", "x", 1, now, 1))
	mock.ExpectCommit()

	novel, err := repo.UpdateNovel(context.Background(), 1, models.NovelInput{
		Title:       "New",
		Description: ptr("d"),
		Status:      ptr("Completed"),
		Rating:      ptr(3.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", novel.Title)
	assert.Len(t, novel.Chapters, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNovel_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE novels").
		WillReturnRows(sqlmock.NewRows(novelRowColumns))
	mock.ExpectRollback()

	_, err := repo.UpdateNovel(context.Background(), 9, models.NovelInput{Title: "x"})
	assert.ErrorIs(t, err, ErrNovelNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// DeleteNovel
// ─────────────────────────────────────────────

func TestDeleteNovel_ReturnsPriorState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM novels").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(novelRowColumns).AddRow(1, "Dune", nil, nil, nil, "Ongoing", 0.0, 3))
	mock.ExpectQuery("SELECT (.+) FROM chapters").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(chapterRowColumns).
			AddRow(1, "a", "", 1, now, 1).
			AddRow(2, "b", "", 2, now, 1))
	mock.ExpectExec(`DELETE FROM novels WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	novel, err := repo.DeleteNovel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", novel.Title)
	assert.Len(t, novel.Chapters, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNovel_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM novels").
		WillReturnRows(sqlmock.NewRows(novelRowColumns))
	mock.ExpectRollback()

	_, err := repo.DeleteNovel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNovelNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNovel_ExecError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNovelRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM novels").
		WillReturnRows(sqlmock.NewRows(novelRowColumns).AddRow(1, "Dune", nil, nil, nil, "Ongoing", 0.0, 3))
	mock.ExpectQuery("SELECT (.+) FROM chapters").
		WillReturnRows(sqlmock.NewRows(chapterRowColumns))
	mock.ExpectExec("DELETE FROM novels").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.DeleteNovel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
