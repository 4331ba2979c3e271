package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return uierrors.NewValidationError(field, msg, err)
	}

	return uierrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName returns the dotted YAML path of the field, without the
// root struct name.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
