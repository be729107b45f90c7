package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/interfaces/http/middleware"
	"btc-yield.backend/internal/interfaces/http/response"
	"btc-yield.backend/internal/usecases"
)

// YieldHandler handles the conversion and staking steps of the yield
// workflow
type YieldHandler struct {
	yieldUC *usecases.YieldUsecase
}

// NewYieldHandler creates a new yield handler
func NewYieldHandler(yieldUC *usecases.YieldUsecase) *YieldHandler {
	return &YieldHandler{yieldUC: yieldUC}
}

// Convert swaps funded USDC into LBTC
// POST /api/yield/convert
func (h *YieldHandler) Convert(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid session"))
		return
	}

	var input entities.ConvertInput
	// Body is optional; defaults apply when absent
	_ = c.ShouldBindJSON(&input)

	result, err := h.yieldUC.Convert(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Stake deposits converted LBTC into the staking contract
// POST /api/yield/stake
func (h *YieldHandler) Stake(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid session"))
		return
	}

	var input entities.StakeInput
	_ = c.ShouldBindJSON(&input)

	result, err := h.yieldUC.Stake(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
