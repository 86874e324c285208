package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

const (
	nameNullMessage  = "'name' should not be null"
	nameBlankMessage = "'name' should not be blank"
)

// checkName applies the null, blank and length rules in order; only the first
// one that fails is reported.
func checkName(h validation.Handler, name *string, minLen, maxLen int, lengthMessage string) error {
	if name == nil {
		return h.Append(validation.NewError(nameNullMessage))
	}

	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return h.Append(validation.NewError(nameBlankMessage))
	}

	if n := utf8.RuneCountInString(trimmed); n < minLen || n > maxLen {
		return h.Append(validation.NewError(lengthMessage))
	}
	return nil
}
