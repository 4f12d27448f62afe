package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc, logger: log}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	out, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out.Profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	out, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	if out.Created {
		h.logger.Info("Profile created", zap.String("name", out.Profile.Personal.Name))
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Profile updated successfully"})
}
