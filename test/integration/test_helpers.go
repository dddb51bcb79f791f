//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"estate-ledger/internal/app"
	"estate-ledger/internal/config"
	"estate-ledger/internal/database"
	"estate-ledger/internal/event"
	"estate-ledger/internal/service"
)

var databaseURL string

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("estate"),
		postgres.WithUsername("estate"),
		postgres.WithPassword("estate"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		panic("start postgres container: " + err.Error())
	}

	databaseURL, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		panic("postgres connection string: " + err.Error())
	}

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:        "8080",
		RequestTimeout:    15 * time.Second,
		DatabaseURL:       databaseURL,
		DBMaxConns:        5,
		DBMinConns:        1,
		CORSOrigins:       []string{"*"},
		RateLimitRPM:      10000,
		WriteRateLimitRPM: 10000,
		DefaultPageSize:   50,
		MaxPageSize:       200,
	}
}

// newTestDB connects to the shared container and truncates every table.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.New(ctx, databaseURL, 5, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE ownerships, houses, persons, items`)
	require.NoError(t, err)

	return db
}

type testServer struct {
	*httptest.Server
	db       *database.DB
	bus      *event.InMemoryBus
	services app.Services
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := testConfig()
	db := newTestDB(t)
	bus := event.NewBus()
	services := app.NewServices(db, bus, service.Pagination{DefaultLimit: cfg.DefaultPageSize, MaxLimit: cfg.MaxPageSize})

	server := httptest.NewServer(app.NewHandler(cfg, services, db, nil))
	t.Cleanup(server.Close)

	return &testServer{Server: server, db: db, bus: bus, services: services}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"meta"`
}

func (s *testServer) do(t *testing.T, method string, path string, payload any) (int, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
