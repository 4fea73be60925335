package utils

import (
	"doccare-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate      *validator.Validate
	dateRegex     = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	timeHHMMRegex = regexp.MustCompile(constvars.RegexTimeHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("date_yyyymmdd", validateDateYYYYMMDD)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
	validate.RegisterValidation("rfc3339", validateDateTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDateYYYYMMDD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := ParseDate(value, time.UTC)
	return err == nil
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !timeHHMMRegex.MatchString(value) {
		return false
	}
	_, _, err := ParseClock(value)
	return err == nil
}

func validateDateTime(fl validator.FieldLevel) bool {
	_, err := ParseDateTime(fl.Field().String())
	return err == nil
}
