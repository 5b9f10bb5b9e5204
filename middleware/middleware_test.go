package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio-simple/services"
	"github.com/gin-gonic/gin"
)

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(AuthMiddleware(), AdminMiddleware())
	admin.GET("/overview", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	return r
}

func adminRequest(t *testing.T, r *gin.Engine, configure func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/overview", nil)
	if configure != nil {
		configure(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRoutesRejectUnauthenticated(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGatedRouter()

	w := adminRequest(t, r, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}

func TestAdminRoutesRejectGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGatedRouter()

	w := adminRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not-a-token")
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGatedRouter()

	token, _, err := services.GenerateToken("u1", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := adminRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", w.Code)
	}
}

func TestAdminRoutesAllowAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGatedRouter()

	token, _, err := services.GenerateToken("a1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := adminRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestAdminRoutesAcceptCookieToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGatedRouter()

	token, _, err := services.GenerateToken("a1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := adminRequest(t, r, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")
	token, _, err := services.GenerateToken("a1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "test-secret")
	r := newGatedRouter()
	w := adminRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}
