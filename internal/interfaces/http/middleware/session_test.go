package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(resolve func(c *gin.Context, sessionID string) (string, error)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionMiddleware(resolve), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	r := newSessionRouter(func(c *gin.Context, sessionID string) (string, error) {
		t.Fatal("resolver must not run without a header")
		return "", nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Missing session"}`, w.Body.String())
}

func TestSessionMiddleware_UnknownSession(t *testing.T) {
	r := newSessionRouter(func(c *gin.Context, sessionID string) (string, error) {
		return "", errors.New("no such session")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(SessionHeader, "bogus")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Invalid session"}`, w.Body.String())
}

func TestSessionMiddleware_ResolvesUser(t *testing.T) {
	r := newSessionRouter(func(c *gin.Context, sessionID string) (string, error) {
		require.Equal(t, "sess-1", sessionID)
		return "user-1", nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(SessionHeader, "sess-1")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"userId":"user-1"}`, w.Body.String())
}
