package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: uc, logger: log}
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	data, err := h.experienceUseCase.ListExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	id, err := h.experienceUseCase.CreateExperience(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Experience added successfully", ID: id})
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.experienceUseCase.UpdateExperience(c.Request.Context(), c.Param("id"), req.ToInput()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Experience updated successfully"})
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	if err := h.experienceUseCase.DeleteExperience(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Experience deleted successfully"})
}
