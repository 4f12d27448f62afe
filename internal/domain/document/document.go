// Package document describes the collection store behind the portfolio.
//
// Every collection holds at most one document, addressed by a fixed key.
// Mutations always overwrite the whole document.
package document

import (
	"context"
	"encoding/json"
)

const (
	CollectionProfiles   = "profiles"
	CollectionSkills     = "skills"
	CollectionExperience = "experience"
	CollectionProjects   = "projects"
)

// Collections lists every collection in the order they are aggregated.
var Collections = []string{
	CollectionProfiles,
	CollectionSkills,
	CollectionExperience,
	CollectionProjects,
}

// IsCollection reports whether name is one of the known collections.
func IsCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

// Store reads and upserts raw JSON documents.
//
// Get returns an error wrapping apperror.ErrNotFound when nothing is stored at
// key, and one wrapping apperror.ErrStore for any driver failure. Replace is an
// upsert of the whole document.
type Store interface {
	Get(ctx context.Context, collection, key string) (json.RawMessage, error)
	Replace(ctx context.Context, collection, key string, doc json.RawMessage) error
	Ping(ctx context.Context) error
	Close()
}
