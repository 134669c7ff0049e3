package service

import (
	"fmt"
	"os"

	"github.com/xolan/tlreport/internal/config"
)

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
	info       config.LoadInfo
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config, info config.LoadInfo) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
		info:       info,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Info returns where the current configuration was loaded from
func (s *ConfigService) Info() config.LoadInfo {
	return s.info
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// SetTheme saves theme to the config file. The file is re-read first so
// flag and environment overrides held by the effective config stay out of it.
func (s *ConfigService) SetTheme(theme string) error {
	fileCfg, err := config.LoadFile(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	fileCfg.Theme = theme
	if err := s.write(fileCfg); err != nil {
		return err
	}
	s.config.Theme = theme
	return nil
}

func (s *ConfigService) write(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	content, err := config.Encode(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(s.configPath, []byte("# tlreport configuration file\n\n"+content), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reload reloads the configuration from disk and the environment
func (s *ConfigService) Reload() error {
	cfg, info, err := config.Load(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	s.info = info
	return nil
}
