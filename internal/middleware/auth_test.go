package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"maestria/internal/domain"
	"maestria/internal/domain/models"
	"maestria/internal/httputil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier maps token strings to claims
type stubVerifier struct {
	claims map[string]*models.CourseClaims
}

func (s *stubVerifier) VerifyToken(tokenString string) (*models.CourseClaims, error) {
	claims, ok := s.claims[tokenString]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *stubVerifier) Close() error { return nil }

func testHandler(captured **models.Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = httputil.GetPrincipal(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const subject = "a3e1f6b2-7c4d-4e5f-8a9b-0c1d2e3f4a5b"

	verifier := &stubVerifier{claims: map[string]*models.CourseClaims{
		"good-token": {
			RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
			TenantID:         "0f9a8a1e-3f35-4f29-9a44-6f9b1f6d2a01",
			Roles:            []string{"ADMIN"},
		},
		"odd-claims-token": {
			RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
		},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no authorization header passes through unauthenticated", func(t *testing.T) {
		var principal *models.Principal
		handler := Auth(verifier, logger)(testHandler(&principal))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, principal)
	})

	t.Run("valid bearer token yields principal", func(t *testing.T) {
		var principal *models.Principal
		handler := Auth(verifier, logger)(testHandler(&principal))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, principal)
		assert.Equal(t, subject, principal.SubjectID)
		assert.True(t, principal.IsAdmin())
	})

	t.Run("unverifiable token is rejected", func(t *testing.T) {
		var principal *models.Principal
		handler := Auth(verifier, logger)(testHandler(&principal))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
		req.Header.Set("Authorization", "Bearer forged-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, principal)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		var principal *models.Principal
		handler := Auth(verifier, logger)(testHandler(&principal))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verified token with unusable claims is rejected", func(t *testing.T) {
		var principal *models.Principal
		handler := Auth(verifier, logger)(testHandler(&principal))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
		req.Header.Set("Authorization", "Bearer odd-claims-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, principal)
	})
}
