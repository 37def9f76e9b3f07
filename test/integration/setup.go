package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	apihttp "github.com/companyvote/api/internal/adapters/handler/http"
	"github.com/companyvote/api/internal/adapters/notifier/webhook"
	"github.com/companyvote/api/internal/adapters/repository/postgres"
	"github.com/companyvote/api/internal/core/services"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(user),
		tcpostgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

type TestApp struct {
	Container testcontainers.Container
	DB        *sql.DB
	Server    *httptest.Server
	Client    *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	container, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	require.NoError(t, postgres.EnsureSchema(ctx, db))

	companyRepo := postgres.NewCompanyRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	leaderboardRepo := postgres.NewLeaderboardRepository(db)

	companyService := services.NewCompanyService(companyRepo)
	voteService := services.NewVoteService(companyRepo, voteRepo, webhook.New(""))
	leaderboardService := services.NewLeaderboardService(leaderboardRepo)

	handler := apihttp.NewHandler(
		apihttp.NewCompanyHandler(companyService),
		apihttp.NewVoteHandler(voteService),
		apihttp.NewLeaderboardHandler(leaderboardService),
		apihttp.NewAdminHandler(companyService, voteService),
	)
	server := httptest.NewServer(handler)

	return &TestApp{
		Container: container,
		DB:        db,
		Server:    server,
		Client:    server.Client(),
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	t.Helper()
	app.Server.Close()
	app.DB.Close()
	if err := app.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) postJSON(t *testing.T, path string, payload map[string]any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := app.Client.Post(app.Server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func (app *TestApp) do(t *testing.T, method, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, app.Server.URL+path, nil)
	require.NoError(t, err)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// addCompany creates a company through the admin API and returns its id.
func (app *TestApp) addCompany(t *testing.T, name, website string) int64 {
	t.Helper()
	resp := app.postJSON(t, "/api/admin/companies", map[string]any{"name": name, "website": website})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var company struct {
		ID int64 `json:"id"`
	}
	decode(t, resp, &company)
	return company.ID
}

func (app *TestApp) castVote(t *testing.T, name, email, phone string, companyID int64) *http.Response {
	t.Helper()
	return app.postJSON(t, "/api/vote", map[string]any{
		"name":        name,
		"email":       email,
		"phone":       phone,
		"companyVote": companyID,
	})
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func uniqueEmail() string {
	return fmt.Sprintf("voter-%s@example.com", uuid.New())
}

func uniquePhone() string {
	return fmt.Sprintf("555-%s", uuid.New())
}
