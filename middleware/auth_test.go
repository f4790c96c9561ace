package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/invicta-fest/festival-backend/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, adminID uint, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authRouter(cfg *config.Config, roles ...string) (*gin.Engine, *AdminContext) {
	var seen AdminContext
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		seen, _ = AdminFromContext(c)
		c.Status(http.StatusOK)
	})
	r.GET("/x", handlers...)
	return r, &seen
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "sekrit"}
	r, seen := authRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "sekrit", 42, "admin"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if seen.AdminID != 42 || seen.Role != "admin" {
		t.Errorf("admin context = %+v", *seen)
	}
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "sekrit"}
	r, _ := authRouter(cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "sekrit"}
	r, _ := authRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", 42, "admin"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "sekrit"}
	r, _ := authRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "sekrit"}
	r, _ := authRouter(cfg, "admin", "superadmin")

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "sekrit", 1, "admin"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "sekrit"}
	r, _ := authRouter(cfg, "superadmin")

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "sekrit", 1, "admin"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	r := gin.New()
	var got string
	r.GET("/ip", AuditMiddleware(), func(c *gin.Context) {
		got = GetIPFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.9:51234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got != "203.0.113.7" {
		t.Errorf("client ip = %q, want 203.0.113.7", got)
	}
}

func TestGetClientIPFallsBackToRemoteAddr(t *testing.T) {
	r := gin.New()
	var got string
	r.GET("/ip", AuditMiddleware(), func(c *gin.Context) {
		got = GetIPFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.9:51234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got != "10.0.0.9" {
		t.Errorf("client ip = %q, want 10.0.0.9", got)
	}
}
