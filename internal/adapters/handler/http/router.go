package http

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(
	companyHandler *CompanyHandler,
	voteHandler *VoteHandler,
	leaderboardHandler *LeaderboardHandler,
	adminHandler *AdminHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"service": "company-vote-api",
			"status":  "ok",
			"endpoints": []string{
				"GET /api/companies",
				"POST /api/vote",
				"GET /api/leaderboard",
			},
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/companies", companyHandler.ListActive)
		r.Post("/vote", voteHandler.Submit)
		r.Get("/leaderboard", leaderboardHandler.Standings)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/companies", adminHandler.AddCompany)
			r.Get("/companies", adminHandler.ListCompanies)
			r.Delete("/companies/{id}", adminHandler.DeactivateCompany)
			r.Patch("/companies/{id}/activate", adminHandler.ReactivateCompany)
			r.Get("/votes", adminHandler.ListVotes)
		})
	})

	return r
}

// recoverer is the last-resort handler guard: any panic becomes a generic
// 500 body, with the stack going to the log rather than the client.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				respondError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
