package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAdminAuth_Middleware(t *testing.T) {
	auth := NewAdminAuth("test-secret")

	valid, err := auth.GenerateToken("ops", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	expired, _ := auth.GenerateToken("ops", -time.Hour)
	otherKey, _ := NewAdminAuth("other-secret").GenerateToken("ops", time.Hour)
	notAdmin, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "visitor", "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"wrong key", "Bearer " + otherKey, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"not admin", "Bearer " + notAdmin, http.StatusForbidden, "FORBIDDEN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var subject string
			h := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject = GetAdminSubject(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/submissions", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rr.Code)
			}
			if tc.code == "" {
				if subject != "ops" {
					t.Errorf("expected subject ops, got %q", subject)
				}
				return
			}

			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			json.NewDecoder(rr.Body).Decode(&body)
			if body.Error.Code != tc.code {
				t.Errorf("expected code %q, got %q", tc.code, body.Error.Code)
			}
		})
	}
}
