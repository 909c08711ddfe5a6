package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// fieldName converts a Go field name such as BirthDate to birth_date.
func fieldName(e validator.FieldError) string {
	var b strings.Builder
	for i, r := range e.Field() {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
