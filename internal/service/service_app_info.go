package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	programID, err := cfg.ParsedProgramID()
	if err != nil {
		return nil, fmt.Errorf("error parsing program id: %w", err)
	}
	scheme, err := cfg.Scheme()
	if err != nil {
		return nil, err
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:       cfg.Version,
			ProgramID:     programID,
			BalanceScheme: scheme,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
