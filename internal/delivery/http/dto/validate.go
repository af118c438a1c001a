package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is the first failed rule of a request body, named by its JSON
// path (e.g. "jobData.title").
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message()
}

func (e *FieldError) Message() string {
	switch e.Rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "is too short"
	case "oneof":
		return "has an unsupported value"
	case "url", "http_url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{Field: fieldPath(fe.Namespace()), Rule: fe.Tag()}
	}
	return err
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
