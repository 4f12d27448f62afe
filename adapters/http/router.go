package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

type Handlers struct {
	Portfolio  *PortfolioHandler
	Profile    *ProfileHandler
	Skill      *SkillHandler
	Experience *ExperienceHandler
	Project    *ProjectHandler
}

type RouterOptions struct {
	CORSOrigins []string
	Metrics     *metrics.Collector
	Logger      logger.Logger
}

func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(
		RecoveryMiddleware(opts.Logger),
		RequestLogger(opts.Logger),
		MetricsMiddleware(opts.Metrics),
		CORSMiddleware(opts.CORSOrigins),
		ErrorMiddleware(opts.Logger),
	)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})

	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/", h.Portfolio.Root)
		api.GET("/health", h.Portfolio.Health)
		api.GET("/portfolio", h.Portfolio.GetPortfolio)

		api.GET("/profile", h.Profile.GetProfile)
		api.PUT("/profile", h.Profile.UpdateProfile)

		api.GET("/skills", h.Skill.GetSkills)
		api.PUT("/skills", h.Skill.ReplaceSkills)

		api.GET("/experience", h.Experience.ListExperience)
		api.POST("/experience", h.Experience.CreateExperience)
		api.PUT("/experience/:id", h.Experience.UpdateExperience)
		api.DELETE("/experience/:id", h.Experience.DeleteExperience)

		api.GET("/projects", h.Project.ListProjects)
		api.POST("/projects", h.Project.CreateProject)
		api.PUT("/projects/:id", h.Project.UpdateProject)
		api.DELETE("/projects/:id", h.Project.DeleteProject)
	}

	return router
}
