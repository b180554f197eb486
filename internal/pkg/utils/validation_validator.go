package utils

import (
	"double-optin-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var apiPrefixRegex = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldNameFromTag)
	validate.RegisterValidation("not_blank", validateNotBlank)
	validate.RegisterValidation("api_prefix", validateAPIPrefix)
	validate.RegisterValidation("date_pattern", validateDatePattern)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func fieldNameFromTag(field reflect.StructField) string {
	for _, tag := range []string{"query", "json"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateAPIPrefix accepts a single lowercase path segment that no static route already owns.
func validateAPIPrefix(fl validator.FieldLevel) bool {
	prefix := fl.Field().String()
	if prefix == strings.TrimPrefix(constvars.AdminRoutePrefix, "/") || prefix == strings.TrimPrefix(constvars.MetricsRoutePath, "/") {
		return false
	}
	return apiPrefixRegex.MatchString(prefix)
}

func validateDatePattern(fl validator.FieldLevel) bool {
	_, err := DateLayout(fl.Field().String())
	return err == nil
}
