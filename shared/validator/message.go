package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const fallbackField = "value"

var messages = map[string]string{
	"required":    "{field} is required",
	"notblank":    "{field} must not be blank",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"max":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"email":       "{field} must be a valid email address",
	"url":         "{field} must be a valid URL",
	"uuid":        "{field} must be a valid UUID",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
	"datetime":    "{field} must match the format {param}",
}

// Length rules read differently for text and lists.
var lengthMessages = map[reflect.Kind]map[string]string{
	reflect.String: {
		"min": "{field} must be at least {param} characters",
		"max": "{field} must be at most {param} characters",
	},
	reflect.Slice: {
		"min": "{field} must contain at least {param} items",
		"max": "{field} must contain at most {param} items",
	},
}

// message describes the first failed rule of err in plain words.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		if text, ok := describe(valErr); ok {
			return text
		}
	}

	return valErrors.Error()
}

func describe(valErr val.FieldError) (string, bool) {
	template, ok := lengthMessages[valErr.Kind()][valErr.Tag()]
	if !ok {
		template, ok = messages[valErr.Tag()]
	}

	if !ok {
		return "", false
	}

	field := valErr.Field()
	if field == "" {
		field = fallbackField
	}

	param := valErr.Param()
	if valErr.Tag() == "oneof" || valErr.Tag() == "mimetypes" {
		param = strings.Join(strings.Fields(param), ", ")
	}

	return strings.NewReplacer("{field}", field, "{param}", param).Replace(template), true
}
