package validate

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	// custom field tags
	notBlankTag = "notblank"
	gradeTag    = "grade"
	lineSafeTag = "linesafe"

	// messages of custom tags, keyed by tag
	customMessages = map[string]string{
		notBlankTag: "cannot be empty",
		gradeTag:    "must be a number",
		lineSafeTag: "cannot contain commas or line breaks",
	}
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// report the name tag (or the lower-cased field name) instead of the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("name"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterValidation(gradeTag, gradeValidation)
	_ = validate.RegisterValidation(lineSafeTag, lineSafeValidation)

	for tag := range customMessages {
		registerTranslation(tag)
	}
}

// RegisterRule registers a struct level validation for the given types.
// Errors reported with sl.ReportError(..., tag, ...) are rendered as
// "<field> <message>".
func RegisterRule(tag, message string, fn validator.StructLevelFunc, types ...interface{}) {
	customMessages[tag] = message
	registerTranslation(tag)
	validate.RegisterStructValidation(fn, types...)
}

// registerTranslation installs the message lookup for a custom tag.
// RegisterTranslation requires a registration func, the default translations
// are already registered so a noop is passed.
func registerTranslation(tag string) {
	registerFn := func(ut.Translator) error { return nil }
	_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustom)
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	msg, ok := customMessages[fe.Tag()]
	if !ok {
		return fe.Error()
	}
	return fe.Field() + " " + msg
}

// Struct validates s and returns nil or a validation-failed *store.Error whose
// message lists every failed field in English.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return store.NewError(store.RetCValidationFailed, err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(translator))
	}
	return store.NewError(store.RetCValidationFailed, strings.Join(msgs, "; "))
}

// ParseGrade parses a grade entered by a user. Leading and trailing blanks are
// ignored, NaN and infinities are rejected.
func ParseGrade(s string) (float64, bool) {
	g, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, false
	}
	return g, true
}

// Custom Validators

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func gradeValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		_, ok = ParseGrade(str)
		return ok
	}
	return false
}

// lineSafeValidation rejects values that would break the id,course,grade line format
func lineSafeValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return !strings.ContainsAny(str, ",\r\n")
	}
	return false
}
