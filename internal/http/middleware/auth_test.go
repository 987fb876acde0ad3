package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("token signing error: %v", err)
	}
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	grp := r.Group("/", JWTAuth(testSecret))
	if len(roles) > 0 {
		grp.Use(RequireRoles(roles...))
	}
	grp.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c), "role": GetUserRole(c)})
	})
	return r
}

func perform(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	w := perform(protectedRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token should be 401, got %d", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"user_id": float64(7),
		"role":    "ADMIN",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w := perform(protectedRouter(), token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token should pass, got %d: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token := signedToken(t, "another-secret", jwt.MapClaims{
		"user_id": float64(7),
		"role":    "ADMIN",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w := perform(protectedRouter(), token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret should be 401, got %d", w.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"user_id": float64(7),
		"role":    "ADMIN",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	w := perform(protectedRouter(), token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token should be 401, got %d", w.Code)
	}
}

func TestRequireRolesForbidsUser(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"user_id": float64(3),
		"role":    "USER",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w := perform(protectedRouter("ADMIN"), token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("USER hitting an admin route should be 403, got %d", w.Code)
	}
}

func TestRequireRolesAllowsAdminCaseInsensitive(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"user_id": float64(3),
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w := perform(protectedRouter("ADMIN"), token)
	if w.Code != http.StatusOK {
		t.Fatalf("role matching should be case-insensitive, got %d", w.Code)
	}
}
