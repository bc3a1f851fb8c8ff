package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"notblank":    "{field} is required",
		"max":         "{field} must be at most {param} characters",
		"min":         "{field} must be at least {param} characters",
		"oneof":       "{field} must be one of {param}",
		"email":       "{field} must be a valid email address",
		"datetime":    "{field} must match {param}",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must be smaller than {param} MB",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
