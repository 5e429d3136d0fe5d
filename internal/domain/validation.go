package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all entities; validator.Validate caches parsed tags
// and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		// ALLOW-PANIC: the tag name and function are static
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	if err := v.RegisterValidation("mailbox", mailbox); err != nil {
		// ALLOW-PANIC: the tag name and function are static
		panic(fmt.Sprintf("register mailbox validation: %v", err))
	}

	return v
}

// notBlank rejects empty and whitespace-only strings. Pointers are
// dereferenced by the validator before this runs, so a nil pointer fails too.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Invalid:
		return false
	default:
		return !field.IsZero()
	}
}

// addressChecks runs the stock tags mailbox is built from. It is separate
// from validate, which registers mailbox itself.
var addressChecks = validator.New()

// mailbox accepts everything the stock "email" tag accepts, plus addresses
// whose domain is a single-label host such as a@localhost. The empty string
// passes; notblank reports it.
func mailbox(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || addressChecks.Var(s, "email") == nil {
		return true
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, host := s[:at], s[at+1:]
	return addressChecks.Var(local+"@example.com", "email") == nil &&
		addressChecks.Var(host, "hostname_rfc1123") == nil
}

// fieldMessages maps "<jsonField>.<tag>" to the message reported when that
// constraint fails.
type fieldMessages map[string]string

// validateStruct checks every rule in the `validate` tags of s separately, so
// a field breaking several rules reports each of them, in tag order. A
// leading omitnil skips the field's remaining rules when it is nil. Messages
// are looked up in messages by "<jsonField>.<rule>"; a nil return means s is
// valid.
func validateStruct(s any, messages fieldMessages) error {
	v := reflect.Indirect(reflect.ValueOf(s))
	t := v.Type()

	var out []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" || rules == "-" {
			continue
		}

		value := v.Field(i)
		tags := strings.Split(rules, ",")
		if tags[0] == "omitnil" {
			if value.Kind() == reflect.Pointer && value.IsNil() {
				continue
			}
			tags = tags[1:]
		}

		name := jsonName(field)
		for _, tag := range tags {
			err := validate.Var(value.Interface(), tag)
			if err == nil {
				continue
			}
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return fmt.Errorf("validate %T.%s: %w", s, field.Name, err)
			}
			out = append(out, messages.lookup(name, tag))
		}
	}

	if len(out) == 0 {
		return nil
	}
	return NewValidationError(out...)
}

func (m fieldMessages) lookup(field, tag string) string {
	rule, _, _ := strings.Cut(tag, "=")
	if msg, ok := m[field+"."+rule]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

// jsonName reports a field by the name clients see in the payload.
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
