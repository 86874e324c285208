package entity

import "github.com/oksasatya/go-catalog-admin/internal/domain/validation"

// The genre length message says "must", the category one says "should";
// clients match on both literals.
const (
	genreNameMinLength     = 1
	genreNameMaxLength     = 255
	genreNameLengthMessage = "'name' must be between 1 and 255 characters"
)

type genreValidator struct {
	genre   *Genre
	handler validation.Handler
}

func (v genreValidator) validate() error {
	return checkName(v.handler, v.genre.name, genreNameMinLength, genreNameMaxLength, genreNameLengthMessage)
}
