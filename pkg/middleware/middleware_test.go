package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conference-hall/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-secret"

// echoActor writes the audit actor and source seen by the handler.
var echoActor = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	actor, source := utils.AuditActor(r.Context(), "API")
	w.Header().Set("X-Actor", actor)
	w.Header().Set("X-Source", source)
	w.WriteHeader(http.StatusNoContent)
})

func TestActor(t *testing.T) {
	token, _, err := utils.GenerateToken(testSecret, "60020656", "Demo Employee", time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantActor  string
	}{
		{name: "anonymous", wantStatus: http.StatusNoContent, wantActor: utils.SystemActor},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusNoContent, wantActor: "60020656"},
		{name: "lowercase scheme", header: "bearer " + token, wantStatus: http.StatusNoContent, wantActor: "60020656"},
		{name: "bad scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/halls", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Actor(testSecret, zap.NewNop())(echoActor).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantActor != "" {
				assert.Equal(t, tt.wantActor, rec.Header().Get("X-Actor"))
				assert.Equal(t, "10.0.0.7", rec.Header().Get("X-Source"))
			}
		})
	}
}

func TestRequireActor(t *testing.T) {
	token, _, err := utils.GenerateToken(testSecret, "60020656", "Demo Employee", time.Hour, time.Now())
	require.NoError(t, err)

	chain := func(required bool) http.Handler {
		return Actor(testSecret, zap.NewNop())(RequireActor(required, zap.NewNop())(echoActor))
	}

	rec := httptest.NewRecorder()
	chain(true).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/halls/1", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	chain(false).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/halls/1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/halls/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	chain(true).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogger_RequestID(t *testing.T) {
	var seen string
	h := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/halls", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://localhost:7150"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/halls", nil)
	req.Header.Set("Origin", "https://localhost:7150")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://localhost:7150", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/halls", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
