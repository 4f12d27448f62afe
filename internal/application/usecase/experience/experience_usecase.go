package experience

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ExperienceUseCase struct {
	repo   experience.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewExperienceUseCase(r experience.Repository, events service.EventPublisher, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, events: events, logger: log}
}

type ExperienceInput struct {
	Title        string
	Organization string
	Period       string
	Description  string
	Achievements []string
}

func (in ExperienceInput) toDomain() experience.Experience {
	return experience.Experience{
		Title:        in.Title,
		Organization: in.Organization,
		Period:       in.Period,
		Description:  in.Description,
		Achievements: in.Achievements,
	}
}

func (uc *ExperienceUseCase) ListExperience(ctx context.Context) (*experience.ExperienceData, error) {
	data, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get experience failed: %w", err)
	}
	return data, nil
}

func (uc *ExperienceUseCase) CreateExperience(ctx context.Context, in ExperienceInput) (string, error) {
	item := in.toDomain()
	if err := item.Validate(); err != nil {
		return "", apperror.NewInvalidInput("experience validation failed", err)
	}

	id, err := uc.repo.Add(ctx, item)
	if err != nil {
		return "", fmt.Errorf("add experience failed: %w", err)
	}

	service.Notify(ctx, uc.events, uc.logger, service.NewPortfolioEvent(service.EventItemAdded, document.CollectionExperience, id))
	return id, nil
}

func (uc *ExperienceUseCase) UpdateExperience(ctx context.Context, id string, in ExperienceInput) error {
	item := in.toDomain()
	if err := item.Validate(); err != nil {
		return apperror.NewInvalidInput("experience validation failed", err)
	}

	if err := uc.repo.UpdateItem(ctx, id, item); err != nil {
		return fmt.Errorf("update experience failed: %w", err)
	}

	service.Notify(ctx, uc.events, uc.logger, service.NewPortfolioEvent(service.EventItemUpdated, document.CollectionExperience, id))
	return nil
}

func (uc *ExperienceUseCase) DeleteExperience(ctx context.Context, id string) error {
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete experience failed: %w", err)
	}

	service.Notify(ctx, uc.events, uc.logger, service.NewPortfolioEvent(service.EventItemDeleted, document.CollectionExperience, id))
	return nil
}
