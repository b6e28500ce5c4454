package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/PainelServices01/user-admin-GO/internal/auth"
	"github.com/PainelServices01/user-admin-GO/internal/middleware"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

func newGatedRouter(t *testing.T, mgr *auth.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.SessionMiddleware(mgr))
	r.Use(middleware.GateMiddleware())

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }

	r.GET("/", ok)
	r.GET("/login", ok)
	r.GET("/register", ok)
	r.GET("/dashboard", ok)
	r.GET("/admin", ok)
	r.GET("/api/users", ok)
	r.POST("/api/users", ok)
	r.GET("/health", ok)

	return r
}

func request(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGateMiddleware_AnonymousRedirectedToLogin(t *testing.T) {
	mgr := auth.NewManager("test-secret")
	r := newGatedRouter(t, mgr)

	rec := request(r, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	rec = request(r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestGateMiddleware_AuthenticatedBouncedFromLogin(t *testing.T) {
	mgr := auth.NewManager("test-secret")
	r := newGatedRouter(t, mgr)

	token, err := mgr.Generate(&models.User{ID: 1, Role: "user"})
	require.NoError(t, err)

	rec := request(r, http.MethodGet, "/login", token)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	// a raiz não redireciona
	rec = request(r, http.MethodGet, "/", token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGateMiddleware_NonAdminBlockedFromAdminArea(t *testing.T) {
	mgr := auth.NewManager("test-secret")
	r := newGatedRouter(t, mgr)

	userToken, err := mgr.Generate(&models.User{ID: 1, Role: "user"})
	require.NoError(t, err)
	adminToken, err := mgr.Generate(&models.User{ID: 2, Role: "admin"})
	require.NoError(t, err)

	rec := request(r, http.MethodGet, "/admin", userToken)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = request(r, http.MethodGet, "/admin", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGateMiddleware_RegistrationBypassesGate(t *testing.T) {
	mgr := auth.NewManager("test-secret")
	r := newGatedRouter(t, mgr)

	rec := request(r, http.MethodPost, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGateMiddleware_IgnoresUnmatchedPaths(t *testing.T) {
	mgr := auth.NewManager("test-secret")
	r := newGatedRouter(t, mgr)

	rec := request(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGateMiddleware_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	mgr := auth.NewManager("test-secret")
	r := newGatedRouter(t, mgr)

	rec := request(r, http.MethodGet, "/dashboard", "broken-token")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionMiddleware_BearerHeader(t *testing.T) {
	mgr := auth.NewManager("test-secret")
	r := newGatedRouter(t, mgr)

	token, err := mgr.Generate(&models.User{ID: 3, Role: "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
