package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/weekend-explore/explore/db"
	"github.com/weekend-explore/explore/internal/auth"
	"github.com/weekend-explore/explore/internal/handlers"
	"github.com/weekend-explore/explore/internal/router"
	"github.com/weekend-explore/explore/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "explore.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	tokens := auth.NewTokenManager("test-secret", auth.TokenTTL)
	users := store.NewUserStore(conn)
	trips := store.NewTripStore(conn)

	return router.NewRouter(handlers.NewAuthHandler(users, tokens), handlers.NewTripHandler(trips), tokens)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatarUrl"`
	} `json:"user"`
}

// register creates an account and returns the issued token and user id.
func register(t *testing.T, engine *gin.Engine, name, email, password string) authResponse {
	t.Helper()

	rec := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out authResponse
	decode(t, rec, &out)
	require.NotEmpty(t, out.Token)
	require.NotEmpty(t, out.User.ID)

	return out
}

func createTrip(t *testing.T, engine *gin.Engine, token string, overrides map[string]any) store.TripView {
	t.Helper()

	body := map[string]any{
		"title":        "Hiking in Nandi Hills",
		"locationName": "Nandi Hills",
		"lat":          13.3702,
		"lng":          77.6835,
		"startDate":    "2026-09-05T10:00:00Z",
		"endDate":      "2026-09-05T14:00:00Z",
	}
	for k, v := range overrides {
		body[k] = v
	}

	rec := doJSON(t, engine, http.MethodPost, "/api/trips", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var view store.TripView
	decode(t, rec, &view)

	return view
}
