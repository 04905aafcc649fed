package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/novera/internal/config"
	"github.com/MKhiriev/novera/internal/logger"
)

type appInfoService struct {
	appVersion string
	storage    Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, storage Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		storage:    storage,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// CheckHealth reports ErrStorageUnavailable when the database does not answer a ping.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	if err := s.storage.Ping(ctx); err != nil {
		s.logger.Err(err).Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
