package postgres

import (
	"strings"

	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
)

// sortColumns maps the sort keys clients may send to real columns.
type sortColumns struct {
	allowed  map[string]string
	fallback string
}

var categorySort = sortColumns{
	allowed: map[string]string{
		"name":        "name",
		"description": "description",
		"createdAt":   "created_at",
		"created_at":  "created_at",
	},
	fallback: "name",
}

var genreSort = sortColumns{
	allowed: map[string]string{
		"name":       "name",
		"createdAt":  "created_at",
		"created_at": "created_at",
	},
	fallback: "name",
}

// orderBy renders an ORDER BY clause. Unknown keys fall back to the default
// column so user input never reaches the SQL text. id breaks ties to keep
// paging stable.
func (s sortColumns) orderBy(q pagination.SearchQuery) string {
	col, ok := s.allowed[q.Sort]
	if !ok {
		col = s.fallback
	}
	dir := "ASC"
	if q.Direction == pagination.Desc {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir + ", id ASC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns free-text terms into a contains pattern, or "" when no
// filtering is wanted.
func likePattern(terms string) string {
	terms = strings.TrimSpace(terms)
	if terms == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(terms) + "%"
}
