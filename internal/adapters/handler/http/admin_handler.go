package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

type AdminHandler struct {
	companies ports.CompanyService
	votes     ports.VoteService
}

func NewAdminHandler(companies ports.CompanyService, votes ports.VoteService) *AdminHandler {
	return &AdminHandler{
		companies: companies,
		votes:     votes,
	}
}

type addCompanyRequest struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

func (h *AdminHandler) AddCompany(w http.ResponseWriter, r *http.Request) {
	var req addCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.companies.Add(r.Context(), ports.AddCompanyInput{
		Name:    req.Name,
		Website: req.Website,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyNameRequired),
			errors.Is(err, domain.ErrCompanyNameTaken):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to add company")
		}
		return
	}

	respondJSON(w, http.StatusCreated, company)
}

func (h *AdminHandler) DeactivateCompany(w http.ResponseWriter, r *http.Request) {
	h.setCompanyActive(w, r, false)
}

func (h *AdminHandler) ReactivateCompany(w http.ResponseWriter, r *http.Request) {
	h.setCompanyActive(w, r, true)
}

func (h *AdminHandler) setCompanyActive(w http.ResponseWriter, r *http.Request, active bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, domain.ErrCompanyNotFound.Error())
		return
	}

	var company *domain.Company
	if active {
		company, err = h.companies.Reactivate(r.Context(), id)
	} else {
		company, err = h.companies.Deactivate(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update company")
		return
	}

	respondJSON(w, http.StatusOK, company)
}

func (h *AdminHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.ListAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load companies")
		return
	}
	respondJSON(w, http.StatusOK, companies)
}

func (h *AdminHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.votes.ListAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load votes")
		return
	}
	respondJSON(w, http.StatusOK, votes)
}
