package wire

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conference-hall/internal/data/repository"
	"conference-hall/pkg/cache"
	"conference-hall/pkg/utils"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(authRequired bool) *utils.Config {
	return &utils.Config{
		App:  utils.AppConfig{Name: "conference-hall", RequestTimeout: 5 * time.Second, AuditSource: "API"},
		JWT:  utils.JWTConfig{Secret: "wire-secret", ExpiryHours: 1},
		CORS: utils.CORSConfig{AllowedOrigins: []string{"http://localhost:5000"}},
		Auth: utils.AuthConfig{Required: authRequired},
	}
}

func newTestApp(t *testing.T, authRequired bool) (*App, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	directory, err := repository.NewDemoEmployeeDirectory(zap.NewNop())
	require.NoError(t, err)

	return Wiring(mock, directory, cache.Noop{}, testConfig(authRequired), zap.NewNop()), mock
}

func TestHealth(t *testing.T) {
	app, mock := newTestApp(t, false)

	mock.ExpectPing()
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWritesRequireActorWhenConfigured(t *testing.T) {
	app, mock := newTestApp(t, true)

	body := `{"hall_name":"Auditorium A","capacity":100,"location":"Block A"}`
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/halls", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginThenProfile(t *testing.T) {
	app, _ := newTestApp(t, true)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	login := `{"user_name":"demo@powergrid.in","password":"test123"}`
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(login)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotEmpty(t, body.Data.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.Token)
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownBookingPath(t *testing.T) {
	app, _ := newTestApp(t, false)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
