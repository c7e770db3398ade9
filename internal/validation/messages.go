package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// messageFor renders the user-facing message for a failed rule, matching the
// wording the booking forms have always shown.
func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", humanize(field))
	case "email":
		return "Please enter a valid email address"
	case "futuredate":
		return "Travel date must be a future date"
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("At least %s %s required", fe.Param(), singular(field))
		}
		if isNumericKind(fe) {
			return fmt.Sprintf("%s must be at least %s", humanize(field), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", humanize(field), fe.Param())
	case "max":
		if isNumericKind(fe) {
			return fmt.Sprintf("%s must be at most %s", humanize(field), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", humanize(field), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", humanize(field), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s digits", humanize(field), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only numbers", humanize(field))
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", humanize(field), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", humanize(field))
	}
}

func isNumericKind(fe validator.FieldError) bool {
	switch fe.Kind().String() {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64":
		return true
	}
	return false
}

// humanize turns a json field name into label casing: "numberOfPeople" →
// "Number of people".
func humanize(field string) string {
	if field == "" {
		return "Field"
	}
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// singular is a tiny helper for collection messages: "locations" →
// "location is", "tourPlanDays" → "tour plan day is".
func singular(field string) string {
	s := strings.ToLower(humanize(field))
	s = strings.TrimSuffix(s, "s")
	return s + " is"
}
