package rest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"Missing", "", ""},
		{"WellFormed", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"CaseInsensitiveScheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"WrongScheme", "Basic dXNlcjpwYXNz", ""},
		{"SchemeOnly", "Bearer", ""},
		{"TrailingSpace", "Bearer abc ", "abc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if got := bearerToken(req); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestAuthenticate_RejectedTokensStayAnonymous(t *testing.T) {
	mint := func(t *testing.T, secret string, expiresAt time.Time, subject string) string {
		t.Helper()
		claims := tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   subject,
				Issuer:    testIssuer,
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		return token
	}

	cases := []struct {
		name  string
		token string
	}{
		{"Garbage", "not-a-jwt"},
		{"WrongSecret", mint(t, "some-other-secret", time.Now().Add(time.Hour), db.TestUserAlice)},
		{"Expired", mint(t, testSecret, time.Now().Add(-time.Hour), db.TestUserAlice)},
		{"EmptySubject", mint(t, testSecret, time.Now().Add(time.Hour), "")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Mutations refuse anonymous callers, so a rejected token
			// surfaces as 401 rather than 403 or success.
			rec := doRequest(t, http.MethodPost, "/api/v1/posts",
				`{"title":"T","content":"C"}`, tc.token)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d, body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAuthenticate_ValidTokenCarriesSubjectAndRole(t *testing.T) {
	token := signToken(t, db.TestUserAlice, "admin")

	e := testHandler.RegisterRoutes()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
