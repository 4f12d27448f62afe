package persistence

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

type documentSkillRepo struct {
	doc collectionDoc[skill.SkillsData]
}

func NewSkillRepo(store document.Store) skill.Repository {
	return &documentSkillRepo{doc: collectionDoc[skill.SkillsData]{
		store:      store,
		collection: document.CollectionSkills,
		key:        skill.Key,
		resource:   "Skills",
	}}
}

func (r *documentSkillRepo) Get(ctx context.Context) (*skill.SkillsData, error) {
	return r.doc.load(ctx)
}

func (r *documentSkillRepo) Replace(ctx context.Context, s *skill.SkillsData) error {
	s.ID = skill.Key
	if s.Skills == nil {
		s.Skills = []skill.Category{}
	}
	for i := range s.Skills {
		if s.Skills[i].Skills == nil {
			s.Skills[i].Skills = []string{}
		}
	}
	return r.doc.save(ctx, s)
}
