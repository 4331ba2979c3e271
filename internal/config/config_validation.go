package config

import (
	"path/filepath"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return uierrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Log.MaxSizeMB != 0 && cfg.Log.File == "" && cfg.Log.Structured == "" {
		return uierrors.NewValidationError("log.max_size_mb", "log.max_size_mb requires log.file or log.structured", nil)
	}

	if cfg.Log.File != "" && filepath.Clean(cfg.Log.File) == filepath.Clean(cfg.Log.Structured) {
		return uierrors.NewValidationError("log.structured", "log.structured must differ from log.file", nil)
	}

	return nil
}
