package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const APIVersion = "1.0.0"

// Pinger reports whether the document store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PortfolioHandler struct {
	getPortfolioUseCase *portfolioUC.GetPortfolioUseCase
	store               Pinger
	logger              logger.Logger
}

func NewPortfolioHandler(getUC *portfolioUC.GetPortfolioUseCase, store Pinger, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{getPortfolioUseCase: getUC, store: store, logger: log}
}

func (h *PortfolioHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio API is running", "version": APIVersion})
}

// Health answers 503 when the document store does not respond within two seconds.
func (h *PortfolioHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Error("Health check failed", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	out := h.getPortfolioUseCase.Execute(c.Request.Context())
	c.JSON(http.StatusOK, ToPortfolioDTO(out))
}
