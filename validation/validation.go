// Package validation checks decoded JSON request bodies against per-field
// rules. Every rule runs and every violation message is kept, so a single
// response carries the full list.
package validation

import (
	"encoding/json"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var emailCheck = validator.New()

type Body struct {
	fields   map[string]any
	messages []string
}

// Parse decodes a raw request body. A missing or malformed body behaves
// like an empty object; the field rules then report the violations.
func Parse(raw []byte) *Body {
	fields := make(map[string]any)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &fields)
	}
	return &Body{fields: fields}
}

func (b *Body) Valid() bool {
	return len(b.messages) == 0
}

func (b *Body) Messages() []string {
	return b.messages
}

// String returns the field's value when it is present and a string.
func (b *Body) String(field string) (string, bool) {
	v, ok := b.value(field)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Number returns the field's value when it is present and numeric.
func (b *Body) Number(field string) (float64, bool) {
	v, ok := b.value(field)
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

func (b *Body) value(field string) (any, bool) {
	v, ok := b.fields[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (b *Body) add(msg string) {
	b.messages = append(b.messages, msg)
}

// NotEmpty requires the field to be present and, when a string, non-empty.
// A whitespace-only string counts as content.
func (b *Body) NotEmpty(field string) {
	v, ok := b.value(field)
	if !ok {
		b.add(field + " should not be empty")
		return
	}
	if s, isString := v.(string); isString && s == "" {
		b.add(field + " should not be empty")
	}
}

// IsString requires the field to be present and a string.
func (b *Body) IsString(field string) {
	v, ok := b.value(field)
	if ok {
		if _, isString := v.(string); isString {
			return
		}
	}
	b.add(field + " must be a string")
}

// OptionalString type-checks the field only when it is present.
func (b *Body) OptionalString(field string) {
	v, ok := b.value(field)
	if !ok {
		return
	}
	if _, isString := v.(string); !isString {
		b.add(field + " must be a string")
	}
}

// IsNumber requires the field to be present and a JSON number.
func (b *Body) IsNumber(field string) {
	v, ok := b.value(field)
	if ok {
		if _, isNumber := v.(float64); isNumber {
			return
		}
	}
	b.add(field + " must be a number conforming to the specified constraints")
}

// IsEmail requires the field to be a syntactically valid email address.
func (b *Body) IsEmail(field string) {
	v, ok := b.value(field)
	if ok {
		if s, isString := v.(string); isString {
			if emailCheck.Var(s, "required,email") == nil {
				return
			}
		}
	}
	b.add(field + " must be an email")
}

// StrongPassword requires minimum length, mixed case, a digit and no spaces.
func (b *Body) StrongPassword(field string) {
	v, ok := b.value(field)
	if ok {
		if s, isString := v.(string); isString && strongPassword(s) {
			return
		}
	}
	b.add(field + " is not strong enough")
}

func strongPassword(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return len(s) >= 8 && upper && lower && digit
}
