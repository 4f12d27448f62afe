package seed

import (
	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

func SeedProfile() *profile.Profile {
	return &profile.Profile{
		Personal: profile.PersonalInfo{
			Name:     "Christa Williford",
			Title:    "Senior Director of Research and Assessment",
			Tagline:  "Bridging scholarship with digital stewardship and cultural preservation",
			Email:    "christa.williford@email.com",
			Phone:    "(555) 123-4567",
			Location: "Washington, DC",
			LinkedIn: "https://www.linkedin.com/in/christawilliford/",
			ORCID:    "https://orcid.org/0000-0001-6273-3793",
			Academia: "https://independent.academia.edu/ChristaWilliford",
		},
		About: profile.AboutInfo{
			Summary: "As Senior Director of Research and Assessment at the Council on Library and Information Resources (CLIR), " +
				"I design and implement documentation and evaluation strategies for programs that advance the work of information organizations. " +
				"My interdisciplinary background spans library science, theatre history, and digital preservation, enabling me to bridge " +
				"traditional scholarship with innovative approaches to cultural heritage stewardship.",
			Highlights: []string{
				"Leading strategic research initiatives at CLIR since my appointment as Senior Director",
				"Designing comprehensive assessment programs for digital preservation initiatives",
				"Publishing extensively on software preservation, data curation, and academic libraries",
				"Mentoring the next generation of information professionals through fellowship programs",
			},
		},
		Education: []profile.Education{
			{Degree: "PhD in Theatre History, Dramatic Literature, and Criticism", Institution: "Indiana University", Year: "Completed"},
			{Degree: "MLIS (Master of Library and Information Science)", Institution: "University of Washington Information School", Year: "Completed"},
			{Degree: "ACE Certified Personal Trainer", Institution: "American Council on Exercise", Year: "2025"},
		},
	}
}

func SeedSkills() *skill.SkillsData {
	return &skill.SkillsData{Skills: []skill.Category{
		{
			Category: "Research & Assessment",
			Skills:   []string{"Program Evaluation", "Strategic Planning", "Grant Writing", "Data Analysis", "Publication Management"},
		},
		{
			Category: "Leadership & Communication",
			Skills:   []string{"Team Management", "Academic Writing", "Public Speaking", "Stakeholder Engagement", "Cross-sector Collaboration"},
		},
	}}
}

func SeedExperience() *experience.ExperienceData {
	return &experience.ExperienceData{Experience: []experience.Experience{
		{
			ID:           uuid.NewString(),
			Title:        "Senior Director of Research and Assessment",
			Organization: "Council on Library and Information Resources (CLIR)",
			Period:       "Current Position",
			Description: "Design and implement documentation and evaluation strategies for CLIR's programs. " +
				"Lead initiatives related to information organizations, manage publications program, and advance new program development.",
			Achievements: []string{
				"Designed and supported implementation of two-year external assessment of CLIR's Recordings at Risk Program",
				"Managed evaluation of Digitizing Hidden Collections: Amplifying Unheard Voices program",
				"Co-authored multiple influential reports on software preservation and data curation",
				"Implemented strategic documentation processes across multiple program areas",
			},
		},
		{
			ID:           uuid.NewString(),
			Title:        "User Services Librarian",
			Organization: "Haverford College",
			Period:       "2006-Present Role",
			Description:  "Provided comprehensive user services and reference support to undergraduate students and faculty in a liberal arts college setting.",
			Achievements: []string{
				"Developed innovative user service programs",
				"Enhanced library accessibility and user experience",
				"Collaborated with academic departments on research support initiatives",
			},
		},
		{
			ID:           uuid.NewString(),
			Title:        "CLIR Postdoctoral Fellow in Academic Libraries",
			Organization: "Bryn Mawr College",
			Period:       "2004-2006",
			Description:  "Conducted research on academic library services and digital humanities applications while contributing to library operations and strategic planning.",
			Achievements: []string{
				"Completed groundbreaking research on academic library services",
				"Contributed to digital humanities initiatives",
				"Developed expertise in library assessment and evaluation methods",
			},
		},
		{
			ID:           uuid.NewString(),
			Title:        "Research Fellow - Theatre and Computer Modeling",
			Organization: "University of Warwick",
			Period:       "1999-2004",
			Description:  "Conducted interdisciplinary research combining theatre history with computational modeling approaches.",
			Achievements: []string{
				"Pioneered computational approaches to theatre historical research",
				"Published research on dramatic literature and performance history",
				"Developed innovative methodologies for humanities computing",
			},
		},
	}}
}

func link(url string) *string { return &url }

func SeedProjects() *project.ProjectsData {
	return &project.ProjectsData{Projects: []project.Project{
		{
			ID:    uuid.NewString(),
			Title: "Recordings at Risk Program Assessment",
			Description: "Led the design and implementation of a comprehensive two-year external assessment of CLIR's Recordings at Risk Program, " +
				"working with Shift Collective to evaluate program effectiveness and impact.",
			Technologies: []string{"Program Evaluation", "Stakeholder Analysis", "Impact Assessment"},
			Status:       "Ongoing - Report expected 2025",
			Link:         link("https://www.clir.org/2023/11/shift-collective-and-recordings-at-risk/"),
		},
		{
			ID:    uuid.NewString(),
			Title: "Supporting Software Preservation Services",
			Description: "Co-authored comprehensive report examining software preservation challenges and opportunities in research and memory organizations, " +
				"providing strategic recommendations for institutional planning.",
			Technologies: []string{"Software Preservation", "Research Analysis", "Strategic Planning"},
			Status:       "Published 2022",
			Link:         link("https://www.clir.org/pubs/reports/supporting-software-preservation-services-in-research-and-memory-organizations/"),
		},
		{
			ID:           uuid.NewString(),
			Title:        "The Curated Futures Project",
			Description:  "Co-edited major initiative exploring the future of cultural heritage institutions and their role in preserving and providing access to digital materials.",
			Technologies: []string{"Digital Curation", "Future Planning", "Cultural Heritage"},
			Status:       "Published 2022",
			Link:         link("https://futures.clir.org/"),
		},
		{
			ID:    uuid.NewString(),
			Title: "One Culture: Computationally Intensive Research",
			Description: "Co-authored influential report on computational research in humanities and social sciences, " +
				"examining the intersection of traditional scholarship and computational methods.",
			Technologies: []string{"Digital Humanities", "Computational Research", "Interdisciplinary Studies"},
			Status:       "Published 2012",
			Link:         link("https://www.clir.org/pubs/reports/pub151/"),
		},
		{
			ID:    uuid.NewString(),
			Title: "National Digital Stewardship Residencies Assessment",
			Description: "Designed and conducted comprehensive assessment of the National Digital Stewardship Residencies program from 2013-2016, " +
				"evaluating program outcomes and long-term impact.",
			Technologies: []string{"Program Assessment", "Digital Stewardship", "Career Development"},
			Status:       "Published 2016, Updated 2018",
			Link:         link("https://www.clir.org/pubs/reports/pub173/pub173abst"),
		},
		{
			ID:    uuid.NewString(),
			Title: "Terra Cognita: Graduate Students in the Archives",
			Description: "Led research project examining the experiences and needs of graduate students working in archives, " +
				"providing insights for improving archival education and practice.",
			Technologies: []string{"Archival Research", "Graduate Education", "User Studies"},
			Status:       "Published 2016",
			Link:         link("https://www.clir.org/pubs/reports/pub170/"),
		},
	}}
}
