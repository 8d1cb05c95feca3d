package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skycast/skycast-go/internal/auth"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, wantUserID int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("UserIDFromContext() missing user id in authenticated request")
		}
		if userID != wantUserID {
			t.Errorf("UserIDFromContext() = %d, want %d", userID, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTAuthMissingHeader(t *testing.T) {
	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a credential")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthMalformedToken(t *testing.T) {
	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with a malformed token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token, err := auth.IssueToken(42, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	token, err := auth.IssueToken(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	handler := JWTAuth(testSecret)(protectedHandler(t, 42))

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}
