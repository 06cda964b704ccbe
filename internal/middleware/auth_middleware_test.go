package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webslearn/webslearn/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) (*gin.Engine, *AuthMiddleware) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)
	router := gin.New()
	return router, m
}

func newTestJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "webslearn.test",
	})
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, m := newTestRouter(newTestJWTService(time.Hour))
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	// No credential at all is 401, not 403.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, m := newTestRouter(newTestJWTService(time.Hour))
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(-time.Minute)
	router, m := newTestRouter(jwtService)
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	token, err := jwtService.Issue(1, "student", "jdoe")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthValidTokenSetsContext(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router, m := newTestRouter(jwtService)

	var gotUserID int64
	var gotRole, gotUsername string
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		gotUserID = UserID(c)
		gotRole = c.GetString(ContextRole)
		gotUsername = c.GetString(ContextUsername)
		c.Status(http.StatusOK)
	})

	token, err := jwtService.Issue(42, "instructor", "jdoe")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "instructor", gotRole)
	assert.Equal(t, "jdoe", gotUsername)
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router, m := newTestRouter(jwtService)
	router.POST("/courses", m.JWTAuth(), m.RoleRequired("instructor"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	studentToken, err := jwtService.Issue(1, "student", "stu")
	require.NoError(t, err)
	instructorToken, err := jwtService.Issue(2, "instructor", "prof")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/courses", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/courses", nil)
	req.Header.Set("Authorization", "Bearer "+instructorToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
