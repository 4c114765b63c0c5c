// Package schema holds the declarative validation rules for the records the
// forms accept, built on go-playground/validator with English messages.
package schema

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/alexanderramin/timetable/internal/domain"
)

// custom validation tags
const (
	courseCodeTag = "coursecode"
	timeSlotTag   = "timeslot"
)

// RE2 \s is ASCII whitespace only, so a no-break space is rejected.
var courseCodePattern = regexp.MustCompile(`^[A-Za-z0-9\s-]+$`)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Register the english error messages as a fallback for rules without
	// a field-specific message.
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(courseCodeTag, courseCodeValidation)
	_ = validate.RegisterValidation(timeSlotTag, timeSlotValidation)

	validate.RegisterStructValidationMapRules(courseRules, domain.Course{})
	validate.RegisterStructValidationMapRules(constraintsRules, domain.Constraints{})
}

func courseCodeValidation(fl validator.FieldLevel) bool {
	return courseCodePattern.MatchString(fl.Field().String())
}

func timeSlotValidation(fl validator.FieldLevel) bool {
	return domain.IsCatalogSlot(fl.Field().String())
}
