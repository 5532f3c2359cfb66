package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func protectedMux(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/dataset/reload", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /v1/summary", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return HTTPMiddleware(mux, testSecret)
}

func TestHTTPMiddleware_OpenRoutesSkipAuth(t *testing.T) {
	handler := protectedMux(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPMiddleware_ProtectedRoute(t *testing.T) {
	handler := protectedMux(t)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateToken("dataset-admin", testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("token signed with wrong secret", func(t *testing.T) {
		token, err := GenerateToken("dataset-admin", "other_secret")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestValidateToken(t *testing.T) {
	token, err := GenerateToken("dataset-admin", testSecret)
	require.NoError(t, err)

	claims, err := validateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "dataset-admin", claims["sub"])

	_, err = validateToken(token, "wrong_secret")
	assert.Error(t, err)
}
