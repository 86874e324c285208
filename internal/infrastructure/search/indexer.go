package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/events"
	"github.com/oksasatya/go-catalog-admin/pkg/helpers"
)

const requestTimeout = 3 * time.Second

const categoriesMapping = `{
  "mappings": {
    "properties": {
      "id":          {"type": "keyword"},
      "name":        {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "description": {"type": "text"},
      "is_active":   {"type": "boolean"},
      "created_at":  {"type": "date"},
      "updated_at":  {"type": "date"},
      "deleted_at":  {"type": "date"}
    }
  }
}`

const genresMapping = `{
  "mappings": {
    "properties": {
      "id":            {"type": "keyword"},
      "name":          {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "is_active":     {"type": "boolean"},
      "categories_id": {"type": "keyword"},
      "created_at":    {"type": "date"},
      "updated_at":    {"type": "date"},
      "deleted_at":    {"type": "date"}
    }
  }
}`

// Indexer keeps a read-only search projection of the catalog in
// Elasticsearch, fed by CatalogEvents.
type Indexer struct {
	es              *elasticsearch.Client
	categoriesIndex string
	genresIndex     string
	logger          logrus.FieldLogger
}

// ErrUnsupportedEvent marks events no retry can apply.
var ErrUnsupportedEvent = errors.New("unsupported event")

func NewIndexer(es *elasticsearch.Client, categoriesIndex, genresIndex string, logger logrus.FieldLogger) *Indexer {
	return &Indexer{es: es, categoriesIndex: categoriesIndex, genresIndex: genresIndex, logger: logger}
}

// EnsureIndices creates both indices with their mappings when missing.
func (i *Indexer) EnsureIndices(ctx context.Context) error {
	if err := helpers.EnsureIndex(ctx, i.es, i.categoriesIndex, categoriesMapping); err != nil {
		return err
	}
	return helpers.EnsureIndex(ctx, i.es, i.genresIndex, genresMapping)
}

func (i *Indexer) indexFor(aggregate string) (string, error) {
	switch aggregate {
	case entity.CategoryAggregate:
		return i.categoriesIndex, nil
	case entity.GenreAggregate:
		return i.genresIndex, nil
	default:
		return "", fmt.Errorf("%w: aggregate %q", ErrUnsupportedEvent, aggregate)
	}
}

// Apply projects one event. Deleting a document that is not indexed is not
// an error, so replays are safe.
func (i *Indexer) Apply(ctx context.Context, ev events.CatalogEvent) error {
	index, err := i.indexFor(ev.Aggregate)
	if err != nil {
		return err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var res *esapi.Response
	switch ev.Type {
	case events.Created, events.Updated:
		req := esapi.IndexRequest{Index: index, DocumentID: ev.ID, Body: bytes.NewReader(ev.Payload), Refresh: "false"}
		res, err = req.Do(c, i.es)
	case events.Deleted:
		req := esapi.DeleteRequest{Index: index, DocumentID: ev.ID}
		res, err = req.Do(c, i.es)
	default:
		return fmt.Errorf("%w: type %q", ErrUnsupportedEvent, ev.Type)
	}
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if ev.Type == events.Deleted && res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		return fmt.Errorf("%s %s %s: %s", ev.Type, ev.Aggregate, ev.ID, res.Status())
	}
	i.logger.WithFields(logrus.Fields{"index": index, "id": ev.ID, "event": string(ev.Type)}).Debug("search projection updated")
	return nil
}

// Hit is one search result. Source is the indexed document.
type Hit struct {
	Aggregate string         `json:"aggregate"`
	ID        string         `json:"id"`
	Score     float64        `json:"score"`
	Source    map[string]any `json:"source"`
}

// Search runs a multi_match over names and descriptions of both indices.
func (i *Indexer) Search(ctx context.Context, q string, size int) ([]Hit, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := i.es.Search(
		i.es.Search.WithContext(c),
		i.es.Search.WithIndex(i.categoriesIndex, i.genresIndex),
		i.es.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Index  string         `json:"_index"`
				ID     string         `json:"_id"`
				Score  float64        `json:"_score"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		aggregate := entity.CategoryAggregate
		if h.Index == i.genresIndex {
			aggregate = entity.GenreAggregate
		}
		out = append(out, Hit{Aggregate: aggregate, ID: h.ID, Score: h.Score, Source: h.Source})
	}
	return out, nil
}
