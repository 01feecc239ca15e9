package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/webcalc/calculation-service/internal/calculation"
)

var (
	usernameValidRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9._-]*[a-zA-Z0-9])?$`)
)

func usernameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return usernameValidRegex.MatchString(val)
}

func calculationTypeValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := calculation.ParseType(val)
	return err == nil
}

func inputsValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().([]float64)
	if !ok {
		return false
	}

	return len(val) >= calculation.MinInputs
}
