package project

import (
	"context"
	"errors"
	"strings"
)

const Key = "main_projects"

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Status       string   `json:"status"`
	Link         *string  `json:"link"`
}

type ProjectsData struct {
	ID       string    `json:"_id"`
	Projects []Project `json:"projects"`
}

var ErrTitleRequired = errors.New("title is required")

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return nil
}

type Repository interface {
	Get(ctx context.Context) (*ProjectsData, error)
	Replace(ctx context.Context, d *ProjectsData) error
	Add(ctx context.Context, item Project) (string, error)
	UpdateItem(ctx context.Context, id string, item Project) error
	DeleteItem(ctx context.Context, id string) error
}
