package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stylistapi/dbhelper"
	"stylistapi/services"
	"stylistapi/test"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	e        *echo.Echo
	db       *gorm.DB
	enqueuer *test.EnqueuerMock
}

// newTestServer needs postgres. The returned cleanup wipes the tables.
func newTestServer(t *testing.T) (*testServer, func()) {
	t.Helper()
	test.RequireDatabase(t)
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	cleaner()

	cfg := test.TestConfig()
	sessions, err := services.NewOutfitSessionStore(db, cfg.Outfit, nil, zerolog.Nop())
	require.NoError(t, err)
	enqueuer := &test.EnqueuerMock{}
	e := SetupServer(cfg, db, &test.AWSProviderMock{}, test.URLCacheMock{}, sessions, enqueuer, nil)
	return &testServer{e: e, db: db, enqueuer: enqueuer}, cleaner
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
