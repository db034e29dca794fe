package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"maestria/internal/auth"
	"maestria/internal/httputil"
	authSvc "maestria/internal/service/auth"
)

// Auth verifies the bearer token when one is present and stores the
// extracted principal in the request context.
//
// Requests without an Authorization header pass through unauthenticated:
// reads are an open catalog in this design. Handlers that mutate state
// require a principal themselves (via httputil.GetPrincipal) and reject its
// absence with 401. A token that is present but unverifiable or with
// unusable claims is rejected here, so handlers never see a half-trusted
// identity.
func Auth(verifier auth.JWTVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "authorization header must use Bearer scheme")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			principal, err := authSvc.ExtractPrincipal(claims)
			if err != nil {
				logger.Debug("token verified but claims unusable", "error", err.Error())
				httputil.RespondError(w, http.StatusUnauthorized, "token claims could not be parsed into an identity")
				return
			}

			next.ServeHTTP(w, httputil.WithPrincipal(r, principal))
		})
	}
}
