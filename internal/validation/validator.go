package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"tourgate/internal/utils"
)

// FieldError is one failed field with the message the form surfaces.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors aggregates all failed fields of one submission.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(fe))
	for _, f := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return strings.Join(parts, "; ")
}

// Validator wraps a configured validator instance. Field names in errors come
// from json tags so they match what the form submitted.
type Validator struct {
	v *validator.Validate
}

// New builds the shared validator and registers the futuredate rule used by
// travel dates.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		return utils.IsFutureDate(fl.Field().String(), utils.NowUTC())
	})

	return &Validator{v: v}
}

// Struct validates a form and returns FieldErrors listing every failure.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{{Field: "", Message: err.Error()}}
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Message: messageFor(fe),
		})
	}
	return out
}

// fieldPath strips the top-level struct name so nested fields read like
// "locations[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
