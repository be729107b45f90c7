package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/interfaces/http/response"
	"btc-yield.backend/internal/usecases"
)

// AuthHandler handles session creation
type AuthHandler struct {
	authUC *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// CreateSession exchanges an identity assertion for a backend session
// POST /api/auth/session
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var input entities.CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Missing identity assertion"))
		return
	}

	sessionID, err := h.authUC.CreateSession(c.Request.Context(), input.IdentityAssertion)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"sessionId": sessionID,
	})
}
