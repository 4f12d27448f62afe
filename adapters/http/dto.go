package http

import (
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

// Profile DTOs
type PersonalInfoDTO struct {
	Name     string `json:"name" binding:"required"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	ORCID    string `json:"orcid"`
	Academia string `json:"academia"`
}

type AboutInfoDTO struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

type EducationDTO struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// UpdateProfileRequest distinguishes an omitted (or null) section from a
// provided one by pointer.
type UpdateProfileRequest struct {
	Personal  *PersonalInfoDTO `json:"personal"`
	About     *AboutInfoDTO    `json:"about"`
	Education *[]EducationDTO  `json:"education"`
}

func (r *UpdateProfileRequest) ToInput() profileUC.UpdateProfileInput {
	var in profileUC.UpdateProfileInput
	if r.Personal != nil {
		in.Personal = &profile.PersonalInfo{
			Name:     r.Personal.Name,
			Title:    r.Personal.Title,
			Tagline:  r.Personal.Tagline,
			Email:    r.Personal.Email,
			Phone:    r.Personal.Phone,
			Location: r.Personal.Location,
			LinkedIn: r.Personal.LinkedIn,
			ORCID:    r.Personal.ORCID,
			Academia: r.Personal.Academia,
		}
	}
	if r.About != nil {
		highlights := r.About.Highlights
		if highlights == nil {
			highlights = []string{}
		}
		in.About = &profile.AboutInfo{Summary: r.About.Summary, Highlights: highlights}
	}
	if r.Education != nil {
		education := make([]profile.Education, len(*r.Education))
		for i, e := range *r.Education {
			education[i] = profile.Education{Degree: e.Degree, Institution: e.Institution, Year: e.Year}
		}
		in.Education = &education
	}
	return in
}

// Skills DTOs
type SkillCategoryDTO struct {
	Category string   `json:"category" binding:"required"`
	Skills   []string `json:"skills"`
}

type ReplaceSkillsRequest struct {
	Skills []SkillCategoryDTO `json:"skills" binding:"required,dive"`
}

func (r *ReplaceSkillsRequest) ToDomain() []skill.Category {
	categories := make([]skill.Category, len(r.Skills))
	for i, c := range r.Skills {
		skills := c.Skills
		if skills == nil {
			skills = []string{}
		}
		categories[i] = skill.Category{Category: c.Category, Skills: skills}
	}
	return categories
}

// Experience DTOs
type ExperienceRequest struct {
	Title        string   `json:"title" binding:"required"`
	Organization string   `json:"organization" binding:"required"`
	Period       string   `json:"period" binding:"required"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

func (r *ExperienceRequest) ToInput() experienceUC.ExperienceInput {
	return experienceUC.ExperienceInput{
		Title:        r.Title,
		Organization: r.Organization,
		Period:       r.Period,
		Description:  r.Description,
		Achievements: r.Achievements,
	}
}

// Project DTOs
type ProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Status       string   `json:"status" binding:"required"`
	Link         *string  `json:"link"`
}

func (r *ProjectRequest) ToCreateInput() projectUC.CreateProjectInput {
	return projectUC.CreateProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		Status:       r.Status,
		Link:         r.Link,
	}
}

func (r *ProjectRequest) ToUpdateInput(id string) projectUC.UpdateProjectInput {
	return projectUC.UpdateProjectInput{
		ProjectID:    id,
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		Status:       r.Status,
		Link:         r.Link,
	}
}

// Portfolio DTOs
type PortfolioDTO struct {
	Personal   *profile.PersonalInfo   `json:"personal"`
	About      *profile.AboutInfo      `json:"about"`
	Education  []profile.Education     `json:"education"`
	Skills     []skill.Category        `json:"skills"`
	Experience []experience.Experience `json:"experience"`
	Projects   []project.Project       `json:"projects"`
}

func ToPortfolioDTO(out *portfolioUC.GetPortfolioOutput) PortfolioDTO {
	return PortfolioDTO{
		Personal:   out.Personal,
		About:      out.About,
		Education:  out.Education,
		Skills:     out.Skills,
		Experience: out.Experience,
		Projects:   out.Projects,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
