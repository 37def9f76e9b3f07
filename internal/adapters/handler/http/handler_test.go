package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

type stubCompanyService struct {
	ports.CompanyService
	listActive func(ctx context.Context) ([]domain.CompanyOption, error)
	listAll    func(ctx context.Context) ([]domain.CompanyWithVotes, error)
	add        func(ctx context.Context, input ports.AddCompanyInput) (*domain.Company, error)
	setActive  func(ctx context.Context, id int64, active bool) (*domain.Company, error)
}

func (s *stubCompanyService) ListActive(ctx context.Context) ([]domain.CompanyOption, error) {
	return s.listActive(ctx)
}

func (s *stubCompanyService) ListAll(ctx context.Context) ([]domain.CompanyWithVotes, error) {
	return s.listAll(ctx)
}

func (s *stubCompanyService) Add(ctx context.Context, input ports.AddCompanyInput) (*domain.Company, error) {
	return s.add(ctx, input)
}

func (s *stubCompanyService) Deactivate(ctx context.Context, id int64) (*domain.Company, error) {
	return s.setActive(ctx, id, false)
}

func (s *stubCompanyService) Reactivate(ctx context.Context, id int64) (*domain.Company, error) {
	return s.setActive(ctx, id, true)
}

type stubVoteService struct {
	ports.VoteService
	submit func(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error)
	list   func(ctx context.Context) ([]domain.VoteWithCompany, error)
}

func (s *stubVoteService) Submit(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
	return s.submit(ctx, input)
}

func (s *stubVoteService) ListAll(ctx context.Context) ([]domain.VoteWithCompany, error) {
	return s.list(ctx)
}

type stubLeaderboardService struct {
	standings func(ctx context.Context) (*domain.Leaderboard, error)
}

func (s *stubLeaderboardService) Standings(ctx context.Context) (*domain.Leaderboard, error) {
	return s.standings(ctx)
}

func newTestHandler(companies ports.CompanyService, votes ports.VoteService, leaderboard ports.LeaderboardService) http.Handler {
	return NewHandler(
		NewCompanyHandler(companies),
		NewVoteHandler(votes),
		NewLeaderboardHandler(leaderboard),
		NewAdminHandler(companies, votes),
	)
}

func emptyStubs() (*stubCompanyService, *stubVoteService, *stubLeaderboardService) {
	companies := &stubCompanyService{
		listActive: func(ctx context.Context) ([]domain.CompanyOption, error) { return nil, nil },
		listAll:    func(ctx context.Context) ([]domain.CompanyWithVotes, error) { return nil, nil },
		add: func(ctx context.Context, input ports.AddCompanyInput) (*domain.Company, error) {
			return &domain.Company{}, nil
		},
		setActive: func(ctx context.Context, id int64, active bool) (*domain.Company, error) {
			return &domain.Company{ID: id, Active: active}, nil
		},
	}
	votes := &stubVoteService{
		submit: func(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
			return &domain.Vote{ID: 1}, nil
		},
		list: func(ctx context.Context) ([]domain.VoteWithCompany, error) { return nil, nil },
	}
	leaderboard := &stubLeaderboardService{
		standings: func(ctx context.Context) (*domain.Leaderboard, error) {
			return &domain.Leaderboard{Entries: []domain.LeaderboardEntry{}}, nil
		},
	}
	return companies, votes, leaderboard
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestServiceDescriptor(t *testing.T) {
	handler := newTestHandler(emptyStubs())

	rec := doRequest(t, handler, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestUnmatchedRouteIs404(t *testing.T) {
	handler := newTestHandler(emptyStubs())

	rec := doRequest(t, handler, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeBody(t, rec)["error"])
}

func TestSubmitVoteCreated(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	var got ports.SubmitVoteInput
	votes.submit = func(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
		got = input
		return &domain.Vote{ID: 42}, nil
	}
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodPost, "/api/vote",
		`{"name":"Ana Silva","email":"ana@x.com","phone":"555-0001","companyVote":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(42), decodeBody(t, rec)["voteId"])
	assert.Equal(t, int64(1), got.CompanyID)
	assert.Equal(t, "Ana Silva", got.Name)
}

func TestSubmitVoteValidationErrors(t *testing.T) {
	cases := []struct {
		err     error
		message string
	}{
		{domain.ErrMissingFields, "missing fields"},
		{domain.ErrInvalidEmail, "invalid email"},
		{domain.ErrInvalidCompany, "invalid company selection"},
		{domain.ErrDuplicateEmail, "this email has already voted"},
		{domain.ErrDuplicatePhone, "this phone has already voted"},
		{domain.ErrAlreadyVoted, "already voted"},
	}

	for _, tc := range cases {
		companies, votes, leaderboard := emptyStubs()
		votes.submit = func(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
			return nil, tc.err
		}
		handler := newTestHandler(companies, votes, leaderboard)

		rec := doRequest(t, handler, http.MethodPost, "/api/vote",
			`{"name":"Ana","email":"ana@x.com","phone":"555-0001","companyVote":1}`)
		require.Equal(t, http.StatusBadRequest, rec.Code, tc.message)
		assert.Equal(t, tc.message, decodeBody(t, rec)["error"])
	}
}

func TestSubmitVoteStoreFailureIsGeneric500(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	votes.submit = func(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
		return nil, errors.New("pq: connection refused to host db.internal")
	}
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodPost, "/api/vote",
		`{"name":"Ana","email":"ana@x.com","phone":"555-0001","companyVote":1}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "failed to submit vote", body["error"])
	assert.NotContains(t, rec.Body.String(), "db.internal")
}

func TestSubmitVoteBadBody(t *testing.T) {
	handler := newTestHandler(emptyStubs())

	rec := doRequest(t, handler, http.MethodPost, "/api/vote", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListActiveCompanies(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	companies.listActive = func(ctx context.Context) ([]domain.CompanyOption, error) {
		return []domain.CompanyOption{{ID: 1, Name: "Acme Corporation"}}, nil
	}
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodGet, "/api/companies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Corporation")
}

func TestAddCompany(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	companies.add = func(ctx context.Context, input ports.AddCompanyInput) (*domain.Company, error) {
		logo := "https://logo.clearbit.com/acme.com"
		return &domain.Company{ID: 1, Name: input.Name, LogoURL: &logo, Active: true}, nil
	}
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodPost, "/api/admin/companies",
		`{"name":"Acme","website":"acme.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Acme", body["name"])
	assert.Equal(t, "https://logo.clearbit.com/acme.com", body["logoUrl"])
}

func TestAddCompanyRejections(t *testing.T) {
	for _, stubErr := range []error{domain.ErrCompanyNameRequired, domain.ErrCompanyNameTaken} {
		companies, votes, leaderboard := emptyStubs()
		companies.add = func(ctx context.Context, input ports.AddCompanyInput) (*domain.Company, error) {
			return nil, stubErr
		}
		handler := newTestHandler(companies, votes, leaderboard)

		rec := doRequest(t, handler, http.MethodPost, "/api/admin/companies", `{"name":""}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, stubErr.Error(), decodeBody(t, rec)["error"])
	}
}

func TestDeactivateCompany(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodDelete, "/api/admin/companies/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["id"])
	assert.Equal(t, false, body["active"])
}

func TestReactivateCompany(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodPatch, "/api/admin/companies/3/activate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["active"])
}

func TestSetActiveUnknownCompany(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	companies.setActive = func(ctx context.Context, id int64, active bool) (*domain.Company, error) {
		return nil, domain.ErrCompanyNotFound
	}
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodDelete, "/api/admin/companies/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetActiveNonNumericIDIs404(t *testing.T) {
	handler := newTestHandler(emptyStubs())

	rec := doRequest(t, handler, http.MethodDelete, "/api/admin/companies/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaderboard(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	leaderboard.standings = func(ctx context.Context) (*domain.Leaderboard, error) {
		return &domain.Leaderboard{
			Entries: []domain.LeaderboardEntry{
				{Rank: 1, CompanyID: 2, Name: "Globex", Votes: 2, Percentage: 66.7},
				{Rank: 2, CompanyID: 1, Name: "Acme Corporation", Votes: 1, Percentage: 33.3},
			},
			TotalVotes: 3,
		}, nil
	}
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodGet, "/api/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["totalVotes"])
	entries := body["leaderboard"].([]any)
	require.Len(t, entries, 2)
	first := entries[0].(map[string]any)
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, "Globex", first["name"])
}

func TestPanicBecomesGeneric500(t *testing.T) {
	companies, votes, leaderboard := emptyStubs()
	leaderboard.standings = func(ctx context.Context) (*domain.Leaderboard, error) {
		panic("boom: secret query text")
	}
	handler := newTestHandler(companies, votes, leaderboard)

	rec := doRequest(t, handler, http.MethodGet, "/api/leaderboard", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])
	assert.False(t, strings.Contains(rec.Body.String(), "secret"))
}
