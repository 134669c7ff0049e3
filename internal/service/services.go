package service

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/xolan/tlreport/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Report *ReportService
	Config *ConfigService
	RunID  string
}

// NewServicesWithConfig creates services around an already loaded configuration
// (useful for testing and for command-line overrides)
func NewServicesWithConfig(configPath string, cfg config.Config, info config.LoadInfo) *Services {
	runID := uuid.NewString()
	logger := log.WithField("run", runID)

	return &Services{
		Report: NewReportService(cfg, logger),
		Config: NewConfigService(configPath, cfg, info),
		RunID:  runID,
	}
}
