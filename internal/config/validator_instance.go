package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/uihelper/internal/logging"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := logging.ParseLevel(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("file_path", func(fl validator.FieldLevel) bool {
			return isValidFilePath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidFilePath checks that path can name a file without touching the
// file system.
func isValidFilePath(path string) bool {
	if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
		return false
	}
	return !strings.HasSuffix(path, "/") && !strings.HasSuffix(path, `\`)
}
