//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../../mocks/mock_publisher.go -package=mocks
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
)

type Type string

const (
	Created Type = "created"
	Updated Type = "updated"
	Deleted Type = "deleted"
)

// CatalogEvent is published after a catalog change has been persisted.
// Payload is empty for deletes.
type CatalogEvent struct {
	Type       Type            `json:"type"`
	Aggregate  string          `json:"aggregate"`
	ID         string          `json:"id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Publisher delivers events to the broker. *helpers.RabbitPublisher
// satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type CategoryPayload struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Active      bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func categoryPayload(c *entity.Category) CategoryPayload {
	return CategoryPayload{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}

type GenrePayload struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Active     bool       `json:"is_active"`
	Categories []string   `json:"categories_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

func genrePayload(g *entity.Genre) GenrePayload {
	categories := make([]string, 0, len(g.Categories()))
	for _, id := range g.Categories() {
		categories = append(categories, id.String())
	}
	return GenrePayload{
		ID:         g.ID().String(),
		Name:       g.Name(),
		Active:     g.IsActive(),
		Categories: categories,
		CreatedAt:  g.CreatedAt(),
		UpdatedAt:  g.UpdatedAt(),
		DeletedAt:  g.DeletedAt(),
	}
}

func newEvent(t Type, aggregate, id string, payload any) (CatalogEvent, error) {
	ev := CatalogEvent{Type: t, Aggregate: aggregate, ID: id, OccurredAt: entity.Now()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return CatalogEvent{}, err
		}
		ev.Payload = raw
	}
	return ev, nil
}
