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

type CreateProjectUseCase struct {
	projectRepo project.Repository
	events      service.EventPublisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(pRepo project.Repository, events service.EventPublisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		events:      events,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title        string
	Description  string
	Technologies []string
	Status       string
	Link         *string
}

type CreateProjectOutput struct {
	ProjectID string
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	newProject := project.Project{
		Title:        input.Title,
		Description:  input.Description,
		Technologies: input.Technologies,
		Status:       input.Status,
		Link:         input.Link,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	id, err := uc.projectRepo.Add(ctx, newProject)
	if err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	service.Notify(ctx, uc.events, uc.logger, service.NewPortfolioEvent(service.EventItemAdded, document.CollectionProjects, id))

	return &CreateProjectOutput{ProjectID: id}, nil
}
