package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/interfaces/http/middleware"
	"btc-yield.backend/internal/interfaces/http/response"
	"btc-yield.backend/internal/usecases"
)

// WalletHandler handles wallet onboarding and address lookup
type WalletHandler struct {
	walletUC *usecases.WalletUsecase
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC *usecases.WalletUsecase) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// Init binds (deploying if needed) the user's smart wallet
// POST /api/wallet/init
func (h *WalletHandler) Init(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid session"))
		return
	}

	wallet, err := h.walletUC.Bind(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"ready":   true,
		"address": wallet.Address(),
	})
}

// GetAddress returns the user's wallet address, null when no wallet has
// been initialized yet
// GET /api/wallet/address
func (h *WalletHandler) GetAddress(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid session"))
		return
	}

	address, err := h.walletUC.GetAddress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var out *string
	if address != "" {
		out = &address
	}
	response.Success(c, http.StatusOK, gin.H{
		"address": out,
	})
}
