package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/softwarepar/softwarepar/internal/middleware"
	"github.com/softwarepar/softwarepar/internal/service"
)

// ListMyCommissions handles GET /api/partners/me/commissions
func (h *Handler) ListMyCommissions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	commissions, err := h.partnerSvc.ListCommissionsForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			writeMessage(w, http.StatusNotFound, "No partner account for this user")
			return
		}
		h.log.Error().Err(err).Msg("failed to list commissions")
		writeMessage(w, http.StatusInternalServerError, "Failed to list commissions")
		return
	}

	writeJSON(w, http.StatusOK, commissions)
}

// RecordCommissionRequest represents an admin commission entry
type RecordCommissionRequest struct {
	PartnerID   string `json:"partnerId"`
	ProjectName string `json:"projectName"`
	Amount      string `json:"amount"`
}

// RecordCommission handles POST /api/admin/commissions
func (h *Handler) RecordCommission(w http.ResponseWriter, r *http.Request) {
	var req RecordCommissionRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PartnerID == "" || strings.TrimSpace(req.ProjectName) == "" || strings.TrimSpace(req.Amount) == "" {
		writeMessage(w, http.StatusBadRequest, "Partner, project name and amount are required")
		return
	}

	commission, err := h.partnerSvc.RecordCommission(r.Context(), req.PartnerID, req.ProjectName, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			writeMessage(w, http.StatusNotFound, "Partner not found")
			return
		}
		h.log.Error().Err(err).Msg("failed to record commission")
		writeMessage(w, http.StatusInternalServerError, "Failed to record commission")
		return
	}

	writeJSON(w, http.StatusCreated, commission)
}
