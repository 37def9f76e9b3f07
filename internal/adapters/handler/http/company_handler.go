package http

import (
	"net/http"

	"github.com/companyvote/api/internal/core/ports"
)

type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		service: service,
	}
}

func (h *CompanyHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListActive(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load companies")
		return
	}
	respondJSON(w, http.StatusOK, companies)
}
