package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/evmarsh/blogforge-be/internal/models"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 24 * time.Hour

const sessionCookieName = "token"

// Claims defines the JWT claims structure for a session.
type Claims struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// AccountResolver loads accounts for session resolution.
type AccountResolver interface {
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}

// Sessions issues and resolves the signed session tokens that tie a client
// to exactly one account between requests.
type Sessions struct {
	key      []byte
	accounts AccountResolver
	secure   bool
}

// NewSessions creates a session manager signing with the given secret.
// secure controls the Secure flag on the session cookie.
func NewSessions(secret string, accounts AccountResolver, secure bool) *Sessions {
	return &Sessions{
		key:      []byte(secret),
		accounts: accounts,
		secure:   secure,
	}
}

// Issue creates a new session token for an authenticated account. Callers
// must only reach this after a successful credential check.
func (s *Sessions) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Parse validates a token string and returns its claims.
func (s *Sessions) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// SetCookie attaches a session token to the response.
func (s *Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(SessionTTL),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// ClearCookie drops the session cookie. Logging out an already-anonymous
// client is a no-op, so this is safe to call unconditionally.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// CurrentUser creates a middleware that resolves the request's session to an
// account and stores it in the context. Requests without a valid token, and
// tokens whose account no longer exists, proceed as anonymous; enforcement is
// the guard's job, not this middleware's.
func (s *Sessions) CurrentUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), nil)))
				return
			}

			claims, err := s.Parse(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), nil)))
				return
			}

			user, err := s.accounts.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				// The account behind this session is gone; force
				// re-authentication by treating the client as anonymous.
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), nil)))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), &user)))
		})
	}
}

// tokenFromRequest pulls the session token from the Authorization header,
// falling back to the session cookie.
func tokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, "Bearer ")
		if len(parts) == 2 {
			return parts[1]
		}
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
