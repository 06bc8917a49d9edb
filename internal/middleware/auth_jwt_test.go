package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"markethub/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestHandler(cfg config.Config) echo.HandlerFunc {
	return AuthJWT(cfg)(func(c echo.Context) error {
		userID, _ := c.Get(CtxUserIDKey).(int64)
		role, _ := c.Get(CtxUserRoleKey).(string)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id": userID,
			"role":    role,
		})
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func request(h echo.HandlerFunc, authz string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func TestAuthJWT_ValidToken(t *testing.T) {
	cfg := config.Config{JWTSecret: "secret"}
	h := newAuthTestHandler(cfg)

	token := signToken(t, "secret", jwt.MapClaims{
		"sub":  int64(42),
		"role": "USER",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec := request(h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	h := newAuthTestHandler(config.Config{JWTSecret: "secret"})

	rec := request(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	h := newAuthTestHandler(config.Config{JWTSecret: "secret"})

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub":  int64(42),
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec := request(h, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	h := newAuthTestHandler(config.Config{JWTSecret: "secret"})

	token := signToken(t, "secret", jwt.MapClaims{
		"sub":  int64(42),
		"role": "USER",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	rec := request(h, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	h := newAuthTestHandler(config.Config{JWTSecret: "secret"})

	rec := request(h, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoleGuard(t *testing.T) {
	guarded := AdminRoleGuard()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()

	//ADMINは通る
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUserRoleKey, "ADMIN")
	require.NoError(t, guarded(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	//USERは403
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(CtxUserRoleKey, "USER")
	_ = guarded(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	//role無しは401
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = guarded(c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
