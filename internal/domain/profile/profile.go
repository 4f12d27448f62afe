package profile

import (
	"context"
)

// Key is the fixed identifier of the single profile document.
const Key = "main_profile"

type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	ORCID    string `json:"orcid"`
	Academia string `json:"academia"`
}

type AboutInfo struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Profile struct {
	ID        string       `json:"_id"`
	Personal  PersonalInfo `json:"personal"`
	About     AboutInfo    `json:"about"`
	Education []Education  `json:"education"`
}

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
	// GetLatest skips any read cache. Partial updates merge onto it.
	GetLatest(ctx context.Context) (*Profile, error)
	Replace(ctx context.Context, p *Profile) error
}
