package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/server/authctx"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func accessClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":        "42",
		"email":      "budi@example.com",
		"name":       "Budi",
		"role":       role,
		"token_type": "access",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthMiddlewareSetsCurrentUser(t *testing.T) {
	var got *authctx.CurrentUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = authctx.FromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/api/pesanan", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, accessClaims("pengguna")))
	rec := httptest.NewRecorder()
	AuthMiddleware(testSecret)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got == nil {
		t.Fatal("current user not set")
	}
	if got.ID != 42 || got.Email != "budi@example.com" || got.Role != domain.RolePengguna {
		t.Fatalf("unexpected principal: %+v", got)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/pesanan", nil)
	rec := httptest.NewRecorder()
	AuthMiddleware(testSecret)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	claims := accessClaims("pengguna")
	claims["token_type"] = "refresh"

	req := httptest.NewRequest("GET", "/api/pesanan", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
	rec := httptest.NewRecorder()
	AuthMiddleware(testSecret)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims("pengguna"))
	signed, err := token.SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/api/pesanan", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	AuthMiddleware(testSecret)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRoleBlocksCustomerFromAdminGroup(t *testing.T) {
	handler := AuthMiddleware(testSecret)(
		RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run")
		})),
	)

	req := httptest.NewRequest("DELETE", "/api/pesanan/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, accessClaims("pengguna")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	called := false
	handler := AuthMiddleware(testSecret)(
		RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		})),
	)

	req := httptest.NewRequest("DELETE", "/api/pesanan/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, accessClaims("admin")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("handler not reached, status = %d", rec.Code)
	}
}
