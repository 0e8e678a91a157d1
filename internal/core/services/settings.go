package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
	"github.com/custodia-labs/scopegen/internal/core/ports/driving"
	"github.com/custodia-labs/scopegen/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend  = "storage.backend"
	keyStorageDataDir  = "storage.data_dir"
	keyOutputDir       = "output.dir"
	keyIntakeSheet     = "intake.sheet"
	keyFontName        = "document.font_name"
	keyFontSize        = "document.font_size"
	keyAlphabetize     = "document.alphabetize"
	keyDefaultProperty = "property.default_name"
)

var settingKeys = []string{
	keyStorageBackend,
	keyStorageDataDir,
	keyOutputDir,
	keyIntakeSheet,
	keyFontName,
	keyFontSize,
	keyAlphabetize,
	keyDefaultProperty,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	backend := domain.StorageBackend(s.getString(keyStorageBackend, defaults.Storage.Backend.String()))
	if !backend.IsValid() {
		logger.Warn("unknown storage backend %q, using %s", backend, defaults.Storage.Backend)
		backend = defaults.Storage.Backend
	}

	return &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: backend,
			DataDir: s.getString(keyStorageDataDir, defaults.Storage.DataDir),
		},
		Document: domain.DocumentSettings{
			FontName:    s.getString(keyFontName, defaults.Document.FontName),
			FontSize:    s.getFloat(keyFontSize, defaults.Document.FontSize),
			Alphabetize: s.getBool(keyAlphabetize, defaults.Document.Alphabetize),
		},
		OutputDir:           s.getString(keyOutputDir, defaults.OutputDir),
		IntakeSheet:         s.getString(keyIntakeSheet, defaults.IntakeSheet),
		DefaultPropertyName: s.getString(keyDefaultProperty, defaults.DefaultPropertyName),
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, settings.Storage.Backend)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyStorageBackend, settings.Storage.Backend.String()},
		{keyStorageDataDir, settings.Storage.DataDir},
		{keyOutputDir, settings.OutputDir},
		{keyIntakeSheet, settings.IntakeSheet},
		{keyFontName, settings.Document.FontName},
		{keyFontSize, settings.Document.FontSize},
		{keyAlphabetize, settings.Document.Alphabetize},
		{keyDefaultProperty, settings.DefaultPropertyName},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set validates and stores a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case keyStorageBackend:
		b := domain.StorageBackend(strings.ToLower(value))
		if !b.IsValid() {
			return fmt.Errorf("%w: %s must be one of file, sqlite, memory", domain.ErrInvalidSetting, key)
		}
		parsed = b.String()
	case keyFontSize:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidSetting, key)
		}
		parsed = f
	case keyAlphabetize:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidSetting, key)
		}
		parsed = b
	case keyStorageDataDir, keyOutputDir, keyIntakeSheet, keyFontName, keyDefaultProperty:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidSetting, key)
		}
		parsed = value
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if v := s.configStore.GetFloat(key); v > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}
