package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/novera/internal/validators"
	"github.com/MKhiriev/novera/models"
)

type StatusValidationService struct {
	inner     StatusService
	validator validators.Validator
}

func NewStatusValidationService() StatusServiceWrapper {
	return &StatusValidationService{
		validator: validators.NewRequestValidator(),
	}
}

// SetStatus rejects unknown labels before anything is written.
func (v *StatusValidationService) SetStatus(ctx context.Context, userID, novelID int64, status models.ReadingStatus) (models.UserNovelStatus, error) {
	if err := v.validator.Validate(ctx, status); err != nil {
		return models.UserNovelStatus{}, err
	}
	if err := v.validator.Validate(ctx, novelID); err != nil {
		return models.UserNovelStatus{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SetStatus(ctx, userID, novelID, status)
}

func (v *StatusValidationService) GetStatus(ctx context.Context, userID, novelID int64) (models.UserNovelStatus, error) {
	if err := v.validator.Validate(ctx, novelID); err != nil {
		return models.UserNovelStatus{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetStatus(ctx, userID, novelID)
}

func (v *StatusValidationService) ListStatuses(ctx context.Context, userID int64) ([]models.NovelStatusEntry, error) {
	return v.inner.ListStatuses(ctx, userID)
}

func (v *StatusValidationService) Wrap(wrapped StatusService) StatusService {
	v.inner = wrapped
	return v
}
