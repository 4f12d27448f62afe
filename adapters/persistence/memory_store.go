package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// MemoryDocumentStore keeps documents in process memory. It backs local runs
// with DB_DRIVER=memory and the HTTP tests.
type MemoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{docs: make(map[string][]byte)}
}

func memoryKey(collection, key string) string {
	return collection + "/" + key
}

func (s *MemoryDocumentStore) Get(_ context.Context, collection, key string) (json.RawMessage, error) {
	if !document.IsCollection(collection) {
		return nil, apperror.NewInternal("unknown collection", fmt.Errorf("collection %q", collection))
	}

	s.mu.RLock()
	doc, ok := s.docs[memoryKey(collection, key)]
	s.mu.RUnlock()
	if !ok {
		return nil, apperror.NewNotFound(collection, key)
	}

	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *MemoryDocumentStore) Replace(_ context.Context, collection, key string, doc json.RawMessage) error {
	if !document.IsCollection(collection) {
		return apperror.NewInternal("unknown collection", fmt.Errorf("collection %q", collection))
	}
	if !json.Valid(doc) {
		return apperror.NewStore("replace "+collection+"/"+key, fmt.Errorf("document is not valid JSON"))
	}

	stored := make([]byte, len(doc))
	copy(stored, doc)

	s.mu.Lock()
	s.docs[memoryKey(collection, key)] = stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryDocumentStore) Ping(context.Context) error { return nil }

func (s *MemoryDocumentStore) Close() {}
