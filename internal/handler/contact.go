package handler

import (
	"net/http"
	"strings"

	"github.com/softwarepar/softwarepar/internal/service"
)

// ContactRequest represents a contact-form submission
type ContactRequest struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Subject  string  `json:"subject"`
	Message  string  `json:"message"`
}

// SubmitContact handles POST /api/contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	if req.FullName == "" || req.Email == "" || req.Subject == "" || strings.TrimSpace(req.Message) == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email, subject and message are required")
		return
	}

	inquiry, err := h.contactSvc.SubmitInquiry(r.Context(), service.SubmitInquiryInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("contact submission failed")
		writeMessage(w, http.StatusInternalServerError, "Failed to submit inquiry")
		return
	}

	writeJSON(w, http.StatusCreated, inquiry)
}

// ListContactInquiries handles GET /api/admin/contact-inquiries
func (h *Handler) ListContactInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.contactSvc.RecentInquiries(r.Context(), 50)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list contact inquiries")
		writeMessage(w, http.StatusInternalServerError, "Failed to list inquiries")
		return
	}

	writeJSON(w, http.StatusOK, inquiries)
}
