package auth

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/evmarsh/blogforge-be/internal/models"
)

// AdminID is the account id with elevated rights: the first account ever
// registered owns the site.
const AdminID int64 = 1

// LoginPath is where anonymous clients are pointed when they hit a guarded
// route.
const LoginPath = "/api/v1/auth/login"

// Policy decides whether an authenticated account may perform a guarded
// operation. It is deliberately a plain function so the admin-by-first-id
// rule can be swapped for a role column without touching the guard.
type Policy func(models.User) bool

// IsPrimaryAccount is the default policy: only the first-created account.
func IsPrimaryAccount(user models.User) bool {
	return user.ID == AdminID
}

// AnyAccount admits every authenticated account. Used for routes that need a
// login but no particular privilege, like commenting.
func AnyAccount(models.User) bool {
	return true
}

// RequireAuthorized creates a middleware guarding its downstream handler with
// the given policy. Anonymous requests get 401 plus a pointer to the login
// route; authenticated requests failing the policy get a hard 403, which is
// never softened into a login redirect. The wrapped handler only ever runs
// after the policy admits the account.
func RequireAuthorized(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFrom(r.Context())

			if user == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error":    "authentication required",
					"loginUrl": LoginPath,
				})
				return
			}

			if !policy(*user) {
				log.Warn().Int64("user_id", user.ID).Str("path", r.URL.Path).Msg("Rejected unauthorized access")
				http.Error(w, ErrForbidden.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
