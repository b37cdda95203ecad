package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts one token value.
type stubValidator struct {
	accept  string
	subject string
}

func (s *stubValidator) ValidateToken(token string) (string, error) {
	if token == s.accept {
		return s.subject, nil
	}
	return "", fmt.Errorf("invalid token")
}

func authedHandler(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if subject, ok := SubjectFromContext(r.Context()); ok {
			gotSubject = subject
		}
		w.WriteHeader(http.StatusNoContent)
	})
	validator := &stubValidator{accept: "good-token", subject: "operator"}
	return Auth(validator, []string{"/health"})(next), &gotSubject
}

func TestAuth_ValidToken(t *testing.T) {
	handler, subject := authedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/letters", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "operator", *subject)
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	handler, _ := authedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/letters", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good-token"},
		{"no token", "Bearer"},
		{"bad token", "Bearer wrong-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := authedHandler(t)
			req := httptest.NewRequest(http.MethodGet, "/letters", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuth_ExemptPathSkipsValidation(t *testing.T) {
	handler, _ := authedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSubjectFromContext_Empty(t *testing.T) {
	_, ok := SubjectFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.False(t, ok)
}
