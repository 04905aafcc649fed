package service

import (
	"fmt"

	"github.com/MKhiriev/novera/internal/config"
	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/store"
)

type Services struct {
	AuthService    AuthService
	NovelService   NovelService
	StatusService  StatusService
	AppInfoService AppInfoService
}

// NewServices builds every service over storages. Request-facing services are
// wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, cfg.App, logger),
		),
		NovelService: NewNovelValidationService().Wrap(
			NewNovelService(storages.NovelRepository, storages.ChapterRepository, logger),
		),
		StatusService: NewStatusValidationService().Wrap(
			NewStatusService(storages.StatusRepository, logger),
		),
		AppInfoService: appInfoService,
	}, nil
}
