package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// catalogNamePattern accepts display names like "Watering Can" or "advanced-tool"
var catalogNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z _-]*$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report JSON field names instead of Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("catalog_name", validateCatalogName)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range verrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "catalog_name":
			errs[field] = "Must be a catalog name (letters, spaces, dashes or underscores)"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateCatalogName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	// Empty is allowed; the numeric id may be used instead
	if name == "" {
		return true
	}
	return len(name) <= 64 && catalogNamePattern.MatchString(name)
}
