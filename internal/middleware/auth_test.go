package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderdesk/internal/domain"
	jwtsvc "orderdesk/internal/pkg/jwt"
	"orderdesk/internal/pkg/policy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserLoader struct {
	user *domain.User
	err  error
}

func (s *stubUserLoader) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return s.user, s.err
}

func newAuthRouter(j *jwtsvc.Service, users UserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(j, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	users := &stubUserLoader{user: &domain.User{
		ID:     7,
		Handle: "+77011112233",
		Role:   domain.RoleClient,
		Active: true,
	}}

	token, err := j.GenerateToken(7, "+77011112233", "client")
	require.NoError(t, err)

	w := doGet(newAuthRouter(j, users), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"client"`)
}

func TestAuth_MissingHeader(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	w := doGet(newAuthRouter(j, &stubUserLoader{}), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuth_ExpiredToken(t *testing.T) {
	j := jwtsvc.New("test-secret", -time.Minute)
	token, err := j.GenerateToken(7, "+77011112233", "client")
	require.NoError(t, err)

	w := doGet(newAuthRouter(j, &stubUserLoader{}), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestAuth_GarbageToken(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	w := doGet(newAuthRouter(j, &stubUserLoader{}), "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuth_UserGone(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	token, err := j.GenerateToken(7, "+77011112233", "client")
	require.NoError(t, err)

	w := doGet(newAuthRouter(j, &stubUserLoader{err: gorm.ErrRecordNotFound}), token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestAuth_DeactivatedAccount(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	token, err := j.GenerateToken(7, "+77011112233", "client")
	require.NoError(t, err)

	users := &stubUserLoader{user: &domain.User{ID: 7, Active: false}}
	w := doGet(newAuthRouter(j, users), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ACCOUNT_DEACTIVATED")
}

func TestRequirePermission_WrongRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/orders", func(c *gin.Context) {
		c.Set("role", string(domain.RoleClient))
	}, RequirePermission(policy.OpOrderListAll), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRequirePermission_AllowedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/orders", func(c *gin.Context) {
		c.Set("role", string(domain.RoleSuperAdmin))
	}, RequirePermission(policy.OpOrderListAll), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
