package pagination

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ErrInvalidPaging rejects negative paging and pages whose offset overflows.
var ErrInvalidPaging = errors.New("page and perPage must not be negative and page*perPage must fit in an int")

// ParseDirection accepts "asc"/"desc" in any case; empty means Asc.
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(Asc):
		return Asc, nil
	case string(Desc):
		return Desc, nil
	default:
		return "", fmt.Errorf("invalid sort direction %q", raw)
	}
}

// SearchQuery describes one page request. It is a value; copy freely.
type SearchQuery struct {
	Page      int
	PerPage   int
	Terms     string
	Sort      string
	Direction Direction
}

func NewSearchQuery(page, perPage int, terms, sort string, direction Direction) (SearchQuery, error) {
	if page < 0 || perPage < 0 {
		return SearchQuery{}, ErrInvalidPaging
	}
	if perPage > 0 && page > math.MaxInt/perPage {
		return SearchQuery{}, ErrInvalidPaging
	}
	if direction == "" {
		direction = Asc
	}
	return SearchQuery{
		Page:      page,
		PerPage:   perPage,
		Terms:     terms,
		Sort:      sort,
		Direction: direction,
	}, nil
}

func (q SearchQuery) Offset() int {
	return q.Page * q.PerPage
}
