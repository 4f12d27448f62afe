package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{skillUseCase: uc, logger: log}
}

func (h *SkillHandler) GetSkills(c *gin.Context) {
	data, err := h.skillUseCase.ExecuteGetSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *SkillHandler) ReplaceSkills(c *gin.Context) {
	var req ReplaceSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if _, err := h.skillUseCase.ExecuteReplaceSkills(c.Request.Context(), skillUC.ReplaceSkillsInput{Skills: req.ToDomain()}); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Skills updated successfully"})
}
