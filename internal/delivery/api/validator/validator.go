// Package validator adapts go-playground/validator to echo and registers
// the field rules used by the marketplace forms.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	personNamePattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜáéíóúüÑñ\s]+$`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	phoneSeparators   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom tags notblank, personname, phone
// and birthdate.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so clients can map failures to their fields.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "personname", isPersonName)
	mustRegister(v, "phone", isPhone)
	mustRegister(v, "birthdate", isBirthDate)

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks i and reports every failing field as VALIDATION_FAILED.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	failed := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed = append(failed, fe.Field()+" ("+fe.Tag()+")")
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(failed, ", ")))
}

func isPersonName(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	return strings.TrimSpace(value) != "" && personNamePattern.MatchString(value)
}

func isPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(fl.Field().String()))
}

// isBirthDate accepts YYYY-MM-DD dates that are not in the future.
func isBirthDate(fl validator.FieldLevel) bool {
	date, err := time.Parse(time.DateOnly, fl.Field().String())
	if err != nil {
		return false
	}

	return !date.After(time.Now().UTC())
}
