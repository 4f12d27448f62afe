package project

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(pRepo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo}
}

type ListProjectsOutput struct {
	Projects *project.ProjectsData
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	data, err := uc.projectRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return &ListProjectsOutput{Projects: data}, nil
}
