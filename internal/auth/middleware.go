package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/models"
)

// ApprovalLookup re-reads the stored approval flag for an account. found is
// false when the account no longer exists (e.g. a rejected admin whose token
// has not yet expired).
type ApprovalLookup func(ctx context.Context, userID uint) (approved bool, found bool, err error)

// Authenticate extracts and verifies the bearer token and stores the decoded
// claims on the request context. Missing credentials and invalid tokens are
// reported separately, both as 401.
func Authenticate(tokens *Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				deny(w, http.StatusUnauthorized, "authorization header required")
				return
			}
			claims, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				deny(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRoles permits only the listed roles. Admin-tier callers additionally
// have their approval flag re-read on every request; the token is never
// trusted for approval state since it can change after issuance.
func RequireRoles(approval ApprovalLookup, lg *zap.SugaredLogger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := FromContext(r.Context())
			if !ok {
				deny(w, http.StatusUnauthorized, "authorization header required")
				return
			}
			if _, ok := allowed[claims.Role]; !ok {
				deny(w, http.StatusForbidden, "insufficient role")
				return
			}
			if models.AdminTier(claims.Role) {
				approved, found, err := approval(r.Context(), claims.UserID)
				if err != nil {
					lg.Errorw("approval lookup failed", "user_id", claims.UserID, "error", err)
					deny(w, http.StatusInternalServerError, "internal server error")
					return
				}
				if !found {
					deny(w, http.StatusUnauthorized, "account not found")
					return
				}
				if !approved {
					deny(w, http.StatusForbidden, "account pending approval")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
