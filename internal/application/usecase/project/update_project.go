package project

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	events      service.EventPublisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(pRepo project.Repository, events service.EventPublisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: pRepo, events: events, logger: log}
}

type UpdateProjectInput struct {
	ProjectID    string
	Title        string
	Description  string
	Technologies []string
	Status       string
	Link         *string
}

type UpdateProjectOutput struct {
	Project project.Project
}

// Execute replaces the whole project stored under ProjectID.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p := project.Project{
		ID:           input.ProjectID,
		Title:        input.Title,
		Description:  input.Description,
		Technologies: input.Technologies,
		Status:       input.Status,
		Link:         input.Link,
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	if err := uc.projectRepo.UpdateItem(ctx, input.ProjectID, p); err != nil {
		return nil, fmt.Errorf("update project failed: %w", err)
	}

	service.Notify(ctx, uc.events, uc.logger, service.NewPortfolioEvent(service.EventItemUpdated, document.CollectionProjects, input.ProjectID))
	return &UpdateProjectOutput{Project: p}, nil
}
