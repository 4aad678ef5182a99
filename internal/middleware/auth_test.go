package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/middleware"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/jwtutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, authHeader string) (int, error, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	h := middleware.AuthMiddleware(func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	if handlerCalled {
		require.NoError(t, err)
	}
	return rec.Code, err, c
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	_, err, _ := runAuth(t, "")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	_, err, _ := runAuth(t, "Token abc123")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	_, err, _ := runAuth(t, "Bearer not.a.token")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := jwtutil.GenerateToken("admin001", "admin@example.com")
	require.NoError(t, err)

	code, err, c := runAuth(t, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "admin001", c.Get("admin_id"))
	assert.Equal(t, "admin@example.com", c.Get("email"))
}
