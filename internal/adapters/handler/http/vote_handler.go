package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

// companyVote is the historical wire name for the target company id.
type voteRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CompanyID int64  `json:"companyVote"`
}

func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vote, err := h.service.Submit(r.Context(), ports.SubmitVoteInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrInvalidCompany),
			errors.Is(err, domain.ErrDuplicateEmail),
			errors.Is(err, domain.ErrDuplicatePhone),
			errors.Is(err, domain.ErrAlreadyVoted):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to submit vote")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"voteId": vote.ID})
}
