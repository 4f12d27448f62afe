package experience

import (
	"context"
	"errors"
	"strings"
)

const Key = "main_experience"

type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type ExperienceData struct {
	ID         string       `json:"_id"`
	Experience []Experience `json:"experience"`
}

var ErrTitleRequired = errors.New("title is required")

func (e *Experience) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrTitleRequired
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
	return nil
}

// Repository addresses single entries by their generated ID; every mutation
// rewrites the whole ExperienceData document.
type Repository interface {
	Get(ctx context.Context) (*ExperienceData, error)
	Replace(ctx context.Context, d *ExperienceData) error
	Add(ctx context.Context, item Experience) (string, error)
	UpdateItem(ctx context.Context, id string, item Experience) error
	DeleteItem(ctx context.Context, id string) error
}
