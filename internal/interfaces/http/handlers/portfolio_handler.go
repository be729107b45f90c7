package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/interfaces/http/middleware"
	"btc-yield.backend/internal/interfaces/http/response"
	"btc-yield.backend/internal/usecases"
)

// PortfolioHandler serves the combined tradfi + crypto portfolio view
type PortfolioHandler struct {
	portfolioUC *usecases.PortfolioUsecase
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolioUC *usecases.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{portfolioUC: portfolioUC}
}

// Get returns the user's portfolio
// GET /api/portfolio
func (h *PortfolioHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid session"))
		return
	}

	portfolio, err := h.portfolioUC.GetPortfolio(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, portfolio)
}
