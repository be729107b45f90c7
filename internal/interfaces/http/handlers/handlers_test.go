package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"btc-yield.backend/internal/infrastructure/blockchain"
	"btc-yield.backend/internal/interfaces/http/middleware"
)

func doJSON(t *testing.T, r *gin.Engine, method, path, sessionID, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "body: %s", w.Body.String())
	}
	return w, parsed
}

func createDevSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/auth/session", "", `{"identityAssertion":"dev"}`)
	require.Equal(t, http.StatusOK, w.Code)
	sessionID, _ := body["sessionId"].(string)
	require.NotEmpty(t, sessionID)
	return sessionID
}

func TestAuthSession_RejectsMissingAssertion(t *testing.T) {
	r := newDevRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/session", "", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing identity assertion", body["message"])
}

func TestAuthSession_RejectsBadAssertion(t *testing.T) {
	r := newDevRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/session", "", `{"identityAssertion":"garbage-token"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	r := newDevRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/wallet/address", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Missing session", body["error"])

	w, body = doJSON(t, r, http.MethodGet, "/api/wallet/address", "not-a-session", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid session", body["error"])
}

func TestWalletAddress_NullBeforeInit(t *testing.T) {
	r := newDevRouter(t)
	sessionID := createDevSession(t, r)

	w, body := doJSON(t, r, http.MethodGet, "/api/wallet/address", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	value, present := body["address"]
	require.True(t, present)
	require.Nil(t, value)
}

func TestWalletInit_OnboardsDevWallet(t *testing.T) {
	r := newDevRouter(t)
	sessionID := createDevSession(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/wallet/init", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["ready"])
	require.Equal(t, "0xdev", body["address"])

	// Address is stable across inits
	w, body = doJSON(t, r, http.MethodPost, "/api/wallet/init", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "0xdev", body["address"])

	w, body = doJSON(t, r, http.MethodGet, "/api/wallet/address", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "0xdev", body["address"])
}

func TestOnrampConfirm_WithoutSessionIs404(t *testing.T) {
	r := newDevRouter(t)
	sessionID := createDevSession(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/onramp/confirm", sessionID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTxStatus_UnknownHashFails(t *testing.T) {
	r := newDevRouter(t)
	sessionID := createDevSession(t, r)

	// Development mode with no chain endpoint: an unrecorded hash cannot
	// be resolved.
	w, _ := doJSON(t, r, http.MethodGet, "/api/tx/0xnothere", sessionID, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDevYieldFlow_EndToEnd(t *testing.T) {
	r := newDevRouter(t)
	sessionID := createDevSession(t, r)

	// Onboard the wallet
	w, body := doJSON(t, r, http.MethodPost, "/api/wallet/init", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "0xdev", body["address"])

	// Open a funding session; the hosted URL carries the wallet address
	w, body = doJSON(t, r, http.MethodPost, "/api/onramp/session", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	onrampURL, _ := body["onrampUrl"].(string)
	require.True(t, strings.HasPrefix(onrampURL, "https://onramp.example?session="))
	require.True(t, strings.HasSuffix(onrampURL, "&to=0xdev"))

	// Confirm the deposit
	w, body = doJSON(t, r, http.MethodPost, "/api/onramp/confirm", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["usdcDetected"])
	require.Equal(t, "1000000", body["amountUsdc"])

	// Convert takes the mock path offline
	w, body = doJSON(t, r, http.MethodPost, "/api/yield/convert", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "mocked", body["status"])
	convertHash, _ := body["txHash"].(string)
	require.True(t, strings.HasPrefix(convertHash, blockchain.MockHashPrefix))

	// The mock hash resolves without any chain access
	w, body = doJSON(t, r, http.MethodGet, "/api/tx/"+convertHash, sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, convertHash, body["hash"])
	require.Equal(t, "mocked", body["status"])

	// Stake (no staking contract configured, mock path again)
	w, body = doJSON(t, r, http.MethodPost, "/api/yield/stake", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "mocked", body["status"])

	// Portfolio now reports the earning position
	w, body = doJSON(t, r, http.MethodGet, "/api/portfolio", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	crypto, _ := body["crypto"].(map[string]interface{})
	require.NotNil(t, crypto)
	position, _ := crypto["btcYieldPosition"].(map[string]interface{})
	require.NotNil(t, position)
	require.Equal(t, "earning", position["status"])
	require.InDelta(t, 4.8, position["apy"], 1e-9)
}
