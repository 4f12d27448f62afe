package project

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	events      service.EventPublisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(pRepo project.Repository, events service.EventPublisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo, events: events, logger: log}
}

type DeleteProjectInput struct {
	ProjectID string
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.DeleteItem(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}

	service.Notify(ctx, uc.events, uc.logger, service.NewPortfolioEvent(service.EventItemDeleted, document.CollectionProjects, input.ProjectID))
	return nil
}
