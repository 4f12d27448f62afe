package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type documentExperienceRepo struct {
	doc collectionDoc[experience.ExperienceData]
}

func NewExperienceRepo(store document.Store) experience.Repository {
	return &documentExperienceRepo{doc: collectionDoc[experience.ExperienceData]{
		store:      store,
		collection: document.CollectionExperience,
		key:        experience.Key,
		resource:   "Experience",
	}}
}

func experienceID(e experience.Experience) string { return e.ID }

func (r *documentExperienceRepo) Get(ctx context.Context) (*experience.ExperienceData, error) {
	return r.doc.load(ctx)
}

func (r *documentExperienceRepo) Replace(ctx context.Context, d *experience.ExperienceData) error {
	d.ID = experience.Key
	if d.Experience == nil {
		d.Experience = []experience.Experience{}
	}
	return r.doc.save(ctx, d)
}

func (r *documentExperienceRepo) Add(ctx context.Context, item experience.Experience) (string, error) {
	data, err := r.doc.loadLatest(ctx)
	if err != nil {
		if !apperror.IsNotFound(err) {
			return "", err
		}
		data = &experience.ExperienceData{}
	}

	item.ID = uuid.NewString()
	data.Experience = append(data.Experience, item)

	if err := r.Replace(ctx, data); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (r *documentExperienceRepo) UpdateItem(ctx context.Context, id string, item experience.Experience) error {
	data, err := r.doc.loadLatest(ctx)
	if err != nil {
		return err
	}

	item.ID = id
	if !replaceByID(data.Experience, id, experienceID, item) {
		return apperror.NewNotFound("Experience", id)
	}
	return r.Replace(ctx, data)
}

func (r *documentExperienceRepo) DeleteItem(ctx context.Context, id string) error {
	data, err := r.doc.loadLatest(ctx)
	if err != nil {
		return err
	}

	kept, removed := removeByID(data.Experience, id, experienceID)
	if !removed {
		return apperror.NewNotFound("Experience", id)
	}
	data.Experience = kept
	return r.Replace(ctx, data)
}
