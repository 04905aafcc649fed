package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/novera/internal/validators"
	"github.com/MKhiriev/novera/models"
)

type NovelValidationService struct {
	inner     NovelService
	validator validators.Validator
}

func NewNovelValidationService() NovelServiceWrapper {
	return &NovelValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *NovelValidationService) ListNovels(ctx context.Context, offset, limit uint64) ([]models.Novel, error) {
	if err := v.validator.Validate(ctx, validators.Page{Offset: offset, Limit: limit}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListNovels(ctx, offset, limit)
}

func (v *NovelValidationService) GetNovel(ctx context.Context, novelID int64) (models.Novel, error) {
	if err := v.validator.Validate(ctx, novelID); err != nil {
		return models.Novel{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetNovel(ctx, novelID)
}

func (v *NovelValidationService) CreateNovel(ctx context.Context, input models.NovelInput, owner models.User) (models.Novel, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Novel{}, fmt.Errorf("error during novel validation before saving: %w", err)
	}

	return v.inner.CreateNovel(ctx, input, owner)
}

func (v *NovelValidationService) UpdateNovel(ctx context.Context, novelID int64, input models.NovelInput, caller models.User) (models.Novel, error) {
	if err := v.validator.Validate(ctx, novelID); err != nil {
		return models.Novel{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Novel{}, fmt.Errorf("error during novel validation before updating: %w", err)
	}

	return v.inner.UpdateNovel(ctx, novelID, input, caller)
}

func (v *NovelValidationService) DeleteNovel(ctx context.Context, novelID int64, caller models.User) (models.Novel, error) {
	if err := v.validator.Validate(ctx, novelID); err != nil {
		return models.Novel{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteNovel(ctx, novelID, caller)
}

func (v *NovelValidationService) ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	if err := v.validator.Validate(ctx, novelID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListChapters(ctx, novelID)
}

func (v *NovelValidationService) CreateChapter(ctx context.Context, novelID int64, input models.ChapterInput, caller models.User) (models.Chapter, error) {
	if err := v.validator.Validate(ctx, novelID); err != nil {
		return models.Chapter{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Chapter{}, fmt.Errorf("error during chapter validation before saving: %w", err)
	}

	return v.inner.CreateChapter(ctx, novelID, input, caller)
}

func (v *NovelValidationService) Wrap(wrapped NovelService) NovelService {
	v.inner = wrapped
	return v
}
