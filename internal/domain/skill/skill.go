package skill

import "context"

const Key = "main_skills"

// Category groups skill names. Category names are not unique.
type Category struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

type SkillsData struct {
	ID     string     `json:"_id"`
	Skills []Category `json:"skills"`
}

type Repository interface {
	Get(ctx context.Context) (*SkillsData, error)
	Replace(ctx context.Context, s *SkillsData) error
}
