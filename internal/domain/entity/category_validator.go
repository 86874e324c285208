package entity

import "github.com/oksasatya/go-catalog-admin/internal/domain/validation"

const (
	categoryNameMinLength     = 3
	categoryNameMaxLength     = 255
	categoryNameLengthMessage = "'name' should be between 3 and 255 characters"
)

type categoryValidator struct {
	category *Category
	handler  validation.Handler
}

func (v categoryValidator) validate() error {
	return v.checkNameConstraints()
}

func (v categoryValidator) checkNameConstraints() error {
	return checkName(v.handler, v.category.name, categoryNameMinLength, categoryNameMaxLength, categoryNameLengthMessage)
}
