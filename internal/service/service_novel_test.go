package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/mock"
	"github.com/MKhiriev/novera/internal/store"
	"github.com/MKhiriev/novera/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	owner    = models.User{UserID: 1, Username: "owner"}
	stranger = models.User{UserID: 2, Username: "stranger"}
)

func newTestNovelSvc(t *testing.T) (NovelService, *mock.MockNovelRepository, *mock.MockChapterRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	novels := mock.NewMockNovelRepository(ctrl)
	chapters := mock.NewMockChapterRepository(ctrl)
	return NewNovelService(novels, chapters, logger.Nop()), novels, chapters
}

func sampleNovel() models.Novel {
	return models.Novel{ID: 10, Title: "Dune", Status: models.DefaultNovelStatus, OwnerID: owner.UserID, Chapters: []models.Chapter{}}
}

func TestNovelService_CreateNovel_UsesCallerAsOwner(t *testing.T) {
	svc, novels, _ := newTestNovelSvc(t)
	ctx := context.Background()
	input := models.NovelInput{Title: "Dune"}

	novels.EXPECT().CreateNovel(ctx, input, owner.UserID).Return(sampleNovel(), nil)

	novel, err := svc.CreateNovel(ctx, input, owner)
	require.NoError(t, err)
	assert.Equal(t, owner.UserID, novel.OwnerID)
}

func TestNovelService_UpdateNovel(t *testing.T) {
	ctx := context.Background()
	input := models.NovelInput{Title: "Dune Messiah"}

	t.Run("owner updates", func(t *testing.T) {
		svc, novels, _ := newTestNovelSvc(t)
		updated := sampleNovel()
		updated.Title = input.Title

		gomock.InOrder(
			novels.EXPECT().GetNovel(ctx, int64(10)).Return(sampleNovel(), nil),
			novels.EXPECT().UpdateNovel(ctx, int64(10), input).Return(updated, nil),
		)

		novel, err := svc.UpdateNovel(ctx, 10, input, owner)
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", novel.Title)
	})

	t.Run("stranger is rejected without a write", func(t *testing.T) {
		svc, novels, _ := newTestNovelSvc(t)
		novels.EXPECT().GetNovel(ctx, int64(10)).Return(sampleNovel(), nil)

		_, err := svc.UpdateNovel(ctx, 10, input, stranger)
		assert.ErrorIs(t, err, ErrNotNovelOwner)
	})

	t.Run("missing novel", func(t *testing.T) {
		svc, novels, _ := newTestNovelSvc(t)
		novels.EXPECT().GetNovel(ctx, int64(99)).Return(models.Novel{}, store.ErrNovelNotFound)

		_, err := svc.UpdateNovel(ctx, 99, input, owner)
		assert.ErrorIs(t, err, store.ErrNovelNotFound)
	})
}

func TestNovelService_DeleteNovel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, novels, _ := newTestNovelSvc(t)
		prior := sampleNovel()
		prior.Chapters = []models.Chapter{{ID: 1, NovelID: 10, ChapterNumber: 1}}

		gomock.InOrder(
			novels.EXPECT().GetNovel(ctx, int64(10)).Return(prior, nil),
			novels.EXPECT().DeleteNovel(ctx, int64(10)).Return(prior, nil),
		)

		deleted, err := svc.DeleteNovel(ctx, 10, owner)
		require.NoError(t, err)
		assert.Equal(t, prior, deleted)
	})

	t.Run("stranger is rejected without a delete", func(t *testing.T) {
		svc, novels, _ := newTestNovelSvc(t)
		novels.EXPECT().GetNovel(ctx, int64(10)).Return(sampleNovel(), nil)

		_, err := svc.DeleteNovel(ctx, 10, stranger)
		assert.ErrorIs(t, err, ErrNotNovelOwner)
	})

	t.Run("missing novel", func(t *testing.T) {
		svc, novels, _ := newTestNovelSvc(t)
		novels.EXPECT().GetNovel(ctx, int64(99)).Return(models.Novel{}, store.ErrNovelNotFound)

		_, err := svc.DeleteNovel(ctx, 99, owner)
		assert.ErrorIs(t, err, store.ErrNovelNotFound)
	})
}

func TestNovelService_CreateChapter(t *testing.T) {
	ctx := context.Background()
	number := 1
	input := models.ChapterInput{Title: "One", Content: "...", ChapterNumber: &number}

	t.Run("owner appends", func(t *testing.T) {
		svc, novels, chapters := newTestNovelSvc(t)
		created := models.Chapter{ID: 4, Title: "One", ChapterNumber: 1, NovelID: 10}

		gomock.InOrder(
			novels.EXPECT().GetNovel(ctx, int64(10)).Return(sampleNovel(), nil),
			chapters.EXPECT().CreateChapter(ctx, input, int64(10)).Return(created, nil),
		)

		chapter, err := svc.CreateChapter(ctx, 10, input, owner)
		require.NoError(t, err)
		assert.Equal(t, created, chapter)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc, novels, _ := newTestNovelSvc(t)
		novels.EXPECT().GetNovel(ctx, int64(10)).Return(sampleNovel(), nil)

		_, err := svc.CreateChapter(ctx, 10, input, stranger)
		assert.ErrorIs(t, err, ErrNotNovelOwner)
	})

	t.Run("missing novel", func(t *testing.T) {
		svc, novels, _ := newTestNovelSvc(t)
		novels.EXPECT().GetNovel(ctx, int64(99)).Return(models.Novel{}, store.ErrNovelNotFound)

		_, err := svc.CreateChapter(ctx, 99, input, owner)
		assert.ErrorIs(t, err, store.ErrNovelNotFound)
	})
}

func TestNovelService_Reads(t *testing.T) {
	svc, novels, chapters := newTestNovelSvc(t)
	ctx := context.Background()

	novels.EXPECT().ListNovels(ctx, uint64(0), uint64(100)).Return([]models.Novel{sampleNovel()}, nil)
	novels.EXPECT().GetNovel(ctx, int64(10)).Return(sampleNovel(), nil)
	chapters.EXPECT().ListChapters(ctx, int64(10)).Return([]models.Chapter{}, nil)

	list, err := svc.ListNovels(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	novel, err := svc.GetNovel(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), novel.ID)

	chapterList, err := svc.ListChapters(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, chapterList)
}
