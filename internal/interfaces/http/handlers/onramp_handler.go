package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/interfaces/http/middleware"
	"btc-yield.backend/internal/interfaces/http/response"
	"btc-yield.backend/internal/usecases"
)

// OnrampHandler handles fiat funding sessions
type OnrampHandler struct {
	yieldUC *usecases.YieldUsecase
}

// NewOnrampHandler creates a new onramp handler
func NewOnrampHandler(yieldUC *usecases.YieldUsecase) *OnrampHandler {
	return &OnrampHandler{yieldUC: yieldUC}
}

// CreateSession opens a funding session and returns the hosted onramp URL
// POST /api/onramp/session
func (h *OnrampHandler) CreateSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid session"))
		return
	}

	onrampURL, err := h.yieldUC.RequestFunding(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"onrampUrl": onrampURL,
	})
}

// Confirm marks the latest funding session as completed and reports the
// detected deposit amount. 404 when the user never opened a session.
// POST /api/onramp/confirm
func (h *OnrampHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid session"))
		return
	}

	amount, err := h.yieldUC.ConfirmFunding(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"usdcDetected": true,
		"amountUsdc":   amount,
	})
}
