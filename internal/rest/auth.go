package rest

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

const identityContextKey = "identity"

// AuthConfig holds the verification parameters for bearer tokens issued
// by the external auth provider.
type AuthConfig struct {
	Secret string
	Issuer string
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// authenticate resolves the caller's identity from the Authorization
// header. A missing or invalid token leaves the request anonymous;
// mutating operations reject anonymous callers downstream.
func (h *Handler) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c.Request())
		if raw == "" {
			return next(c)
		}

		claims := &tokenClaims{}
		opts := []jwt.ParserOption{
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		}
		if h.auth.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(h.auth.Issuer))
		}

		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte(h.auth.Secret), nil
		}, opts...)

		if err != nil || !token.Valid || claims.Subject == "" {
			h.log.Debug("rejected bearer token", "error", err)
			return next(c)
		}

		c.Set(identityContextKey, blog.Identity{
			UserID: claims.Subject,
			Role:   claims.Role,
		})

		return next(c)
	}
}

// identity returns the caller established by the authenticate middleware,
// or the anonymous identity.
func (h *Handler) identity(c echo.Context) blog.Identity {
	if id, ok := c.Get(identityContextKey).(blog.Identity); ok {
		return id
	}
	return blog.Identity{}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
