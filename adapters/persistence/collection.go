package persistence

import (
	"context"
	"encoding/json"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// collectionDoc binds a collection and its fixed key to the record type D
// stored there.
type collectionDoc[D any] struct {
	store      document.Store
	collection string
	key        string
	resource   string
}

func (c collectionDoc[D]) load(ctx context.Context) (*D, error) {
	raw, err := c.store.Get(ctx, c.collection, c.key)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound(c.resource, c.key)
		}
		return nil, err
	}

	var d D
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, apperror.NewStore("decode "+c.collection+"/"+c.key, err)
	}
	return &d, nil
}

// uncachedStore is implemented by read caches that can hand out the store
// they wrap.
type uncachedStore interface {
	Uncached() document.Store
}

// loadLatest reads past any read cache. Read-modify-write paths use it so a
// stale cached copy never becomes the base of a write.
func (c collectionDoc[D]) loadLatest(ctx context.Context) (*D, error) {
	if u, ok := c.store.(uncachedStore); ok {
		c.store = u.Uncached()
	}
	return c.load(ctx)
}

func (c collectionDoc[D]) save(ctx context.Context, d *D) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return apperror.NewInternal("failed to marshal "+c.collection+" document", err)
	}
	return c.store.Replace(ctx, c.collection, c.key, raw)
}

// replaceByID overwrites, in place, the first item whose id matches.
func replaceByID[T any](items []T, id string, idOf func(T) string, item T) bool {
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = item
			return true
		}
	}
	return false
}

// removeByID returns a new slice without the items whose id matches, and
// whether anything was removed. The order of the remaining items is kept.
func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			kept = append(kept, it)
		}
	}
	return kept, len(kept) != len(items)
}
