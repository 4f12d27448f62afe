package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type documentProjectRepo struct {
	doc collectionDoc[project.ProjectsData]
}

func NewProjectRepo(store document.Store) project.Repository {
	return &documentProjectRepo{doc: collectionDoc[project.ProjectsData]{
		store:      store,
		collection: document.CollectionProjects,
		key:        project.Key,
		resource:   "Projects",
	}}
}

func projectID(p project.Project) string { return p.ID }

func (r *documentProjectRepo) Get(ctx context.Context) (*project.ProjectsData, error) {
	return r.doc.load(ctx)
}

func (r *documentProjectRepo) Replace(ctx context.Context, d *project.ProjectsData) error {
	d.ID = project.Key
	if d.Projects == nil {
		d.Projects = []project.Project{}
	}
	return r.doc.save(ctx, d)
}

// Add appends p with a fresh ID. A missing collection document starts empty.
func (r *documentProjectRepo) Add(ctx context.Context, p project.Project) (string, error) {
	data, err := r.doc.loadLatest(ctx)
	if err != nil {
		if !apperror.IsNotFound(err) {
			return "", err
		}
		data = &project.ProjectsData{}
	}

	p.ID = uuid.NewString()
	data.Projects = append(data.Projects, p)

	if err := r.Replace(ctx, data); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (r *documentProjectRepo) UpdateItem(ctx context.Context, id string, p project.Project) error {
	data, err := r.doc.loadLatest(ctx)
	if err != nil {
		return err
	}

	p.ID = id
	if !replaceByID(data.Projects, id, projectID, p) {
		return apperror.NewNotFound("Project", id)
	}
	return r.Replace(ctx, data)
}

// DeleteItem removes the project with the given ID. An unknown ID is reported
// as not found and nothing is written.
func (r *documentProjectRepo) DeleteItem(ctx context.Context, id string) error {
	data, err := r.doc.loadLatest(ctx)
	if err != nil {
		return err
	}

	kept, removed := removeByID(data.Projects, id, projectID)
	if !removed {
		return apperror.NewNotFound("Project", id)
	}
	data.Projects = kept
	return r.Replace(ctx, data)
}
