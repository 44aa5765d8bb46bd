package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/benx421/donorsync/internal/api"
	"github.com/benx421/donorsync/internal/config"
)

const protectedPrefix = "/api/v1/"

type contextKey string

const staffContextKey contextKey = "staff"

// Staff identifies the authenticated staff member behind a request
type Staff struct {
	ID    string
	Email string
}

// StaffClaims are the claims carried by a staff session token
type StaffClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// StaffFromContext returns the staff member attached by StaffAuth
func StaffFromContext(ctx context.Context) (*Staff, bool) {
	staff, ok := ctx.Value(staffContextKey).(*Staff)
	return staff, ok
}

// StaffAuth rejects requests under /api/v1/ that do not carry a valid HS256
// session token, read from the session cookie or a Bearer header.
func StaffAuth(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	secret := []byte(cfg.SessionSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, protectedPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			raw := sessionToken(r, cfg.SessionCookie)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "authentication required")
				return
			}

			staff, err := verifyStaffToken(raw, secret)
			if err != nil {
				logger.Debug("rejected staff session", "path", r.URL.Path, "error", err)
				WriteError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), staffContextKey, staff)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func verifyStaffToken(raw string, secret []byte) (*Staff, error) {
	claims := &StaffClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &Staff{ID: claims.Subject, Email: claims.Email}, nil
}

// IssueStaffToken signs a staff session token valid for ttl
func IssueStaffToken(secret, subject, email string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}

	now := time.Now()
	claims := StaffClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
