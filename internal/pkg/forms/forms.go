// Package forms validates the HTML forms of the web frontend and turns
// validator errors into per-field messages.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	cardNumberRx = regexp.MustCompile(`^\d{16}$`)
	expiryRx     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRx        = regexp.MustCompile(`^\d{3,4}$`)
	zipRx        = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	emailRx      = regexp.MustCompile(`\S+@\S+\.\S+`)
	whitespaceRx = regexp.MustCompile(`\s`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields under their form names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "cardnumber", func(fl validator.FieldLevel) bool {
		return cardNumberRx.MatchString(StripSpaces(fl.Field().String()))
	})
	mustRegister(v, "expiry", regexValidator(expiryRx))
	mustRegister(v, "cvv", regexValidator(cvvRx))
	mustRegister(v, "zipcode", regexValidator(zipRx))
	mustRegister(v, "looseemail", regexValidator(emailRx))

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register %s: %v", tag, err))
	}
}

func regexValidator(rx *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return rx.MatchString(fl.Field().String())
	}
}

// StripSpaces removes all whitespace, e.g. the grouping in card numbers.
func StripSpaces(s string) string {
	return whitespaceRx.ReplaceAllString(s, "")
}

// Errors maps a form field name to its message.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

// messages holds the text per field and failed rule.
var messages = map[string]map[string]string{
	"cardNumber":      {"required": "Card number is required", "cardnumber": "Card number must be 16 digits"},
	"cardName":        {"required": "Cardholder name is required"},
	"expiryDate":      {"required": "Expiry date is required", "expiry": "Format must be MM/YY"},
	"cvv":             {"required": "CVV is required", "cvv": "CVV must be 3 or 4 digits"},
	"billingAddress":  {"required": "Billing address is required"},
	"city":            {"required": "City is required"},
	"state":           {"required": "State is required"},
	"zipCode":         {"required": "ZIP code is required", "zipcode": "Invalid ZIP code format"},
	"firstName":       {"required": "First name is required"},
	"lastName":        {"required": "Last name is required"},
	"email":           {"required": "Email is required", "looseemail": "Email is invalid"},
	"password":        {"required": "Password is required", "min": "Password must be at least 8 characters"},
	"confirmPassword": {"eqfield": "Passwords do not match"},
	"phone":           {"required": "Phone number is required"},
	"address":         {"required": "Address is required"},
	"customerId":      {"required": "Customer is required"},
	"policyNumber":    {"required": "Policy number is required"},
	"policyType":      {"required": "Policy type is required"},
	"startDate":       {"required": "Start date is required"},
	"endDate":         {"required": "End date is required"},
	"premium":         {"gte": "Premium must not be negative"},
	"status":          {"required": "Status is required"},
}

func message(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return fmt.Sprintf("%s is invalid", field)
}

// Validate checks s and returns nil when it is valid. Only the first failure
// per field is reported.
func Validate(s interface{}) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"_": err.Error()}
	}

	out := Errors{}
	for _, fe := range verrs {
		field := fe.Field()
		if out.Has(field) {
			continue
		}
		out[field] = message(field, fe.Tag())
	}
	return out
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
