package service

import (
	"context"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/store"
	"github.com/MKhiriev/novera/models"
)

type statusService struct {
	statusRepository store.StatusRepository

	logger *logger.Logger
}

func NewStatusService(statusRepository store.StatusRepository, logger *logger.Logger) StatusService {
	return &statusService{
		statusRepository: statusRepository,
		logger:           logger,
	}
}

// SetStatus creates the (user, novel) status record or overwrites its label.
func (s *statusService) SetStatus(ctx context.Context, userID, novelID int64, status models.ReadingStatus) (models.UserNovelStatus, error) {
	return s.statusRepository.SetUserNovelStatus(ctx, userID, novelID, status)
}

func (s *statusService) GetStatus(ctx context.Context, userID, novelID int64) (models.UserNovelStatus, error) {
	return s.statusRepository.GetUserNovelStatus(ctx, userID, novelID)
}

// ListStatuses returns the caller's shelf as (novel_id, status) pairs.
func (s *statusService) ListStatuses(ctx context.Context, userID int64) ([]models.NovelStatusEntry, error) {
	statuses, err := s.statusRepository.ListUserStatuses(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.NovelStatusEntry, 0, len(statuses))
	for _, status := range statuses {
		entries = append(entries, models.NovelStatusEntry{
			NovelID: status.NovelID,
			Status:  status.Status,
		})
	}

	return entries, nil
}
