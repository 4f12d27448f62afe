package skill

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type SkillUseCase struct {
	skillRepo skill.Repository
	events    service.EventPublisher
	logger    logger.Logger
}

func NewSkillUseCase(repo skill.Repository, events service.EventPublisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{skillRepo: repo, events: events, logger: log}
}

func (uc *SkillUseCase) ExecuteGetSkills(ctx context.Context) (*skill.SkillsData, error) {
	s, err := uc.skillRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get skills failed: %w", err)
	}
	return s, nil
}

type ReplaceSkillsInput struct {
	Skills []skill.Category
}

// ExecuteReplaceSkills overwrites the whole skills list; nothing is merged.
func (uc *SkillUseCase) ExecuteReplaceSkills(ctx context.Context, input ReplaceSkillsInput) (*skill.SkillsData, error) {
	data := &skill.SkillsData{Skills: input.Skills}
	if err := uc.skillRepo.Replace(ctx, data); err != nil {
		return nil, fmt.Errorf("update skills failed: %w", err)
	}

	service.Notify(ctx, uc.events, uc.logger, service.NewPortfolioEvent(service.EventDocumentReplaced, document.CollectionSkills, ""))
	return data, nil
}
