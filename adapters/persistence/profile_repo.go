package persistence

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
)

type documentProfileRepo struct {
	doc collectionDoc[profile.Profile]
}

func NewProfileRepo(store document.Store) profile.Repository {
	return &documentProfileRepo{doc: collectionDoc[profile.Profile]{
		store:      store,
		collection: document.CollectionProfiles,
		key:        profile.Key,
		resource:   "Profile",
	}}
}

func (r *documentProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	return r.doc.load(ctx)
}

func (r *documentProfileRepo) GetLatest(ctx context.Context) (*profile.Profile, error) {
	return r.doc.loadLatest(ctx)
}

func (r *documentProfileRepo) Replace(ctx context.Context, p *profile.Profile) error {
	p.ID = profile.Key
	if p.Education == nil {
		p.Education = []profile.Education{}
	}
	if p.About.Highlights == nil {
		p.About.Highlights = []string{}
	}
	return r.doc.save(ctx, p)
}
