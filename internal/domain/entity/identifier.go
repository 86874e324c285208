package entity

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidIdentifier = errors.New("identifier must not be empty")

// Identifier is the opaque identity of an aggregate. Equality is by the
// wrapped string, case-sensitive, so identifiers can be compared with == and
// used as map keys.
type Identifier struct {
	value string
}

// UniqueIdentifier returns a fresh lower-cased UUID identifier.
func UniqueIdentifier() Identifier {
	return Identifier{value: strings.ToLower(uuid.NewString())}
}

// IdentifierFrom wraps raw as given, rejecting the empty string.
func IdentifierFrom(raw string) (Identifier, error) {
	if raw == "" {
		return Identifier{}, ErrInvalidIdentifier
	}
	return Identifier{value: raw}, nil
}

func (i Identifier) String() string {
	return i.value
}

func (i Identifier) IsZero() bool {
	return i.value == ""
}

type CategoryID struct {
	Identifier
}

func NewCategoryID() CategoryID {
	return CategoryID{UniqueIdentifier()}
}

func CategoryIDFrom(raw string) (CategoryID, error) {
	id, err := IdentifierFrom(raw)
	if err != nil {
		return CategoryID{}, err
	}
	return CategoryID{id}, nil
}

type GenreID struct {
	Identifier
}

func NewGenreID() GenreID {
	return GenreID{UniqueIdentifier()}
}

func GenreIDFrom(raw string) (GenreID, error) {
	id, err := IdentifierFrom(raw)
	if err != nil {
		return GenreID{}, err
	}
	return GenreID{id}, nil
}
