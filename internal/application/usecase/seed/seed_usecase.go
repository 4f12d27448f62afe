package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type SeedUseCase struct {
	profileRepo    profile.Repository
	skillRepo      skill.Repository
	experienceRepo experience.Repository
	projectRepo    project.Repository
	logger         logger.Logger
}

func NewSeedUseCase(
	profileRepo profile.Repository,
	skillRepo skill.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	log logger.Logger,
) *SeedUseCase {
	return &SeedUseCase{
		profileRepo:    profileRepo,
		skillRepo:      skillRepo,
		experienceRepo: experienceRepo,
		projectRepo:    projectRepo,
		logger:         log,
	}
}

// SeedResult records which of the four collection writes succeeded.
type SeedResult struct {
	Profile    bool
	Skills     bool
	Experience bool
	Projects   bool
}

func (r SeedResult) AllSucceeded() bool {
	return r.Profile && r.Skills && r.Experience && r.Projects
}

// Execute replaces every collection with the seed set. Each write is
// attempted even when an earlier one failed. Running it again overwrites the
// same four documents, so it is idempotent apart from regenerated item IDs.
func (uc *SeedUseCase) Execute(ctx context.Context) SeedResult {
	var res SeedResult

	res.Profile = uc.try("profiles", uc.profileRepo.Replace(ctx, SeedProfile()))
	res.Skills = uc.try("skills", uc.skillRepo.Replace(ctx, SeedSkills()))
	res.Experience = uc.try("experience", uc.experienceRepo.Replace(ctx, SeedExperience()))
	res.Projects = uc.try("projects", uc.projectRepo.Replace(ctx, SeedProjects()))

	return res
}

func (uc *SeedUseCase) try(collection string, err error) bool {
	if err != nil {
		uc.logger.Error("Seeding collection failed", err, zap.String("collection", collection))
		return false
	}
	uc.logger.Info("Seeded collection", zap.String("collection", collection))
	return true
}
