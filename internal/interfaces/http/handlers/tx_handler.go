package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/interfaces/http/response"
	"btc-yield.backend/internal/usecases"
)

// TxHandler serves transaction status lookups
type TxHandler struct {
	txUC *usecases.TransactionUsecase
}

// NewTxHandler creates a new transaction handler
func NewTxHandler(txUC *usecases.TransactionUsecase) *TxHandler {
	return &TxHandler{txUC: txUC}
}

// GetStatus reports the current status of a submitted transaction
// GET /api/tx/:hash
func (h *TxHandler) GetStatus(c *gin.Context) {
	hash := c.Param("hash")
	if hash == "" {
		response.Error(c, domainerrors.BadRequest("Missing transaction hash"))
		return
	}

	status, err := h.txUC.GetStatus(c.Request.Context(), hash)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"hash":   hash,
		"status": status,
	})
}
