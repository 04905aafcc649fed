package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/store"
	"github.com/MKhiriev/novera/models"
)

type novelService struct {
	novelRepository   store.NovelRepository
	chapterRepository store.ChapterRepository

	logger *logger.Logger
}

func NewNovelService(novelRepository store.NovelRepository, chapterRepository store.ChapterRepository, logger *logger.Logger) NovelService {
	return &novelService{
		novelRepository:   novelRepository,
		chapterRepository: chapterRepository,
		logger:            logger,
	}
}

func (n *novelService) ListNovels(ctx context.Context, offset, limit uint64) ([]models.Novel, error) {
	return n.novelRepository.ListNovels(ctx, offset, limit)
}

func (n *novelService) GetNovel(ctx context.Context, novelID int64) (models.Novel, error) {
	return n.novelRepository.GetNovel(ctx, novelID)
}

func (n *novelService) CreateNovel(ctx context.Context, input models.NovelInput, owner models.User) (models.Novel, error) {
	return n.novelRepository.CreateNovel(ctx, input, owner.UserID)
}

// UpdateNovel replaces the novel's fields. The novel must exist and belong to caller.
func (n *novelService) UpdateNovel(ctx context.Context, novelID int64, input models.NovelInput, caller models.User) (models.Novel, error) {
	if _, err := n.ownedNovel(ctx, novelID, caller); err != nil {
		return models.Novel{}, err
	}

	return n.novelRepository.UpdateNovel(ctx, novelID, input)
}

// DeleteNovel removes the novel with its chapters and returns its prior state.
// The novel must exist and belong to caller.
func (n *novelService) DeleteNovel(ctx context.Context, novelID int64, caller models.User) (models.Novel, error) {
	if _, err := n.ownedNovel(ctx, novelID, caller); err != nil {
		return models.Novel{}, err
	}

	return n.novelRepository.DeleteNovel(ctx, novelID)
}

func (n *novelService) ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	return n.chapterRepository.ListChapters(ctx, novelID)
}

// CreateChapter appends a chapter to the novel. The novel must exist and belong to caller.
func (n *novelService) CreateChapter(ctx context.Context, novelID int64, input models.ChapterInput, caller models.User) (models.Chapter, error) {
	if _, err := n.ownedNovel(ctx, novelID, caller); err != nil {
		return models.Chapter{}, err
	}

	return n.chapterRepository.CreateChapter(ctx, input, novelID)
}

// ownedNovel loads the novel and checks that caller owns it.
// A missing novel is reported before ownership.
func (n *novelService) ownedNovel(ctx context.Context, novelID int64, caller models.User) (models.Novel, error) {
	log := logger.FromContext(ctx)

	novel, err := n.novelRepository.GetNovel(ctx, novelID)
	if err != nil {
		log.Err(err).Int64("novel_id", novelID).Msg("novel lookup failed")
		return models.Novel{}, fmt.Errorf("novel lookup failed: %w", err)
	}

	if novel.OwnerID != caller.UserID {
		log.Warn().
			Int64("novel_id", novelID).
			Int64("owner_id", novel.OwnerID).
			Int64("caller_id", caller.UserID).
			Msg("caller is not the novel owner")
		return models.Novel{}, ErrNotNovelOwner
	}

	return novel, nil
}
