package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bankoffice/internal/config"
	"bankoffice/internal/model"
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testAuthService() *service.AuthService {
	return service.NewAuthService(nil, &config.Config{
		JWT: config.JWTConfig{Secret: testSecret, ExpireSeconds: 3600},
	})
}

func signToken(t *testing.T, role string, clientID int64, expiresIn time.Duration) string {
	t.Helper()
	claims := &service.Claims{
		UserID:   1,
		Username: "tester",
		Role:     role,
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(testAuthService()), RequireRoles(roles...), func(c *gin.Context) {
		response.Success(c, gin.H{"role": mustClaims(c).Role})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	w := doRequest(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	r := protectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token := signToken(t, model.RoleAdmin, 0, -time.Minute)
	w := doRequest(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesForbidden(t *testing.T) {
	token := signToken(t, model.RoleCashier, 0, time.Hour)
	w := doRequest(protectedRouter(model.RoleAdmin), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesAllowed(t *testing.T) {
	token := signToken(t, model.RoleAdmin, 0, time.Hour)
	w := doRequest(protectedRouter(model.RoleAdmin, model.RoleEmployee), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestRequireRolesAnyAuthenticated(t *testing.T) {
	token := signToken(t, model.RoleClient, 3, time.Hour)
	w := doRequest(protectedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
}
