package portfolio

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type GetPortfolioUseCase struct {
	profileRepo    profile.Repository
	skillRepo      skill.Repository
	experienceRepo experience.Repository
	projectRepo    project.Repository
	logger         logger.Logger
}

func NewGetPortfolioUseCase(
	profileRepo profile.Repository,
	skillRepo skill.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	log logger.Logger,
) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		profileRepo:    profileRepo,
		skillRepo:      skillRepo,
		experienceRepo: experienceRepo,
		projectRepo:    projectRepo,
		logger:         log,
	}
}

// GetPortfolioOutput is the whole portfolio. Personal and About are nil when no
// profile is stored; the lists are never nil.
type GetPortfolioOutput struct {
	Personal   *profile.PersonalInfo
	About      *profile.AboutInfo
	Education  []profile.Education
	Skills     []skill.Category
	Experience []experience.Experience
	Projects   []project.Project
}

// Execute never fails: a collection that is missing or cannot be read is
// reported empty.
func (uc *GetPortfolioUseCase) Execute(ctx context.Context) *GetPortfolioOutput {
	out := &GetPortfolioOutput{
		Education:  []profile.Education{},
		Skills:     []skill.Category{},
		Experience: []experience.Experience{},
		Projects:   []project.Project{},
	}

	if p, err := uc.profileRepo.Get(ctx); err == nil {
		out.Personal = &p.Personal
		out.About = &p.About
		if p.Education != nil {
			out.Education = p.Education
		}
	} else {
		uc.warn("profiles", err)
	}

	if s, err := uc.skillRepo.Get(ctx); err == nil {
		if s.Skills != nil {
			out.Skills = s.Skills
		}
	} else {
		uc.warn("skills", err)
	}

	if e, err := uc.experienceRepo.Get(ctx); err == nil {
		if e.Experience != nil {
			out.Experience = e.Experience
		}
	} else {
		uc.warn("experience", err)
	}

	if p, err := uc.projectRepo.Get(ctx); err == nil {
		if p.Projects != nil {
			out.Projects = p.Projects
		}
	} else {
		uc.warn("projects", err)
	}

	return out
}

func (uc *GetPortfolioUseCase) warn(collection string, err error) {
	if apperror.IsNotFound(err) {
		return
	}
	uc.logger.Warn("Portfolio section unavailable", zap.String("collection", collection), zap.Error(err))
}
