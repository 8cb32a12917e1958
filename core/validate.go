package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/0xRadioAc7iv/go-employees/internal/shift"
)

// Rules shared by the Employee struct tags and the single-value parsers.
const (
	idRules        = "gte=1,lte=2147483647"
	nameRules      = "required,recordname"
	amountRules    = "finiteamount,gte=0"
	clockTimeRules = "clocktime"
)

var fieldReasons = map[string]string{
	"ID":      "must be a positive integer",
	"Name":    fmt.Sprintf("must be non-empty text of at most %d bytes", NameCapacityBytes),
	"Salary":  "must be a number >= 0",
	"Bonus":   "must be a number >= 0",
	"InTime":  "must be HH:MM in 24-hour format (e.g., 09:30)",
	"OutTime": "must be HH:MM in 24-hour format (e.g., 09:30)",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	mustRegister(v, "recordname", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) <= NameCapacityBytes && !strings.ContainsRune(s, 0)
	})
	mustRegister(v, "clocktime", func(fl validator.FieldLevel) bool {
		return shift.ValidClockTime(fl.Field().String())
	})
	mustRegister(v, "finiteamount", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// ValidateEmployee checks every field of e. The returned error joins one
// *FieldError per invalid field.
func ValidateEmployee(e Employee) error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fieldErrs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, newFieldError(fe.Field(), fmt.Sprint(fe.Value()), fieldReasons[fe.Field()]))
	}

	return errors.Join(fieldErrs...)
}

func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || validate.Var(id, idRules) != nil {
		return 0, newFieldError("ID", raw, fieldReasons["ID"])
	}
	return id, nil
}

// ParseName accepts the name exactly as typed.
func ParseName(raw string) (string, error) {
	if err := validate.Var(raw, nameRules); err != nil {
		return "", newFieldError("Name", raw, fieldReasons["Name"])
	}
	return raw, nil
}

// ParseAmount parses a salary or bonus value; field names which one for
// error messages.
func ParseAmount(field, raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || validate.Var(amount, amountRules) != nil {
		return 0, newFieldError(field, raw, "must be a number >= 0")
	}
	return amount, nil
}

// ParseClockTime parses an in or out time; field names which one for error
// messages.
func ParseClockTime(field, raw string) (string, error) {
	t := strings.TrimSpace(raw)
	if err := validate.Var(t, clockTimeRules); err != nil {
		return "", newFieldError(field, raw, fieldReasons["InTime"])
	}
	return t, nil
}
