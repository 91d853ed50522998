package handler

import (
	"net/http"
)

// PaymentConfigResponse exposes the public half of the MercadoPago
// configuration. The access token never leaves the server.
type PaymentConfigResponse struct {
	PublicKey string `json:"publicKey"`
}

// GetPaymentConfig handles GET /api/payments/config. While the configuration
// has not been loaded the endpoint reports the degraded state instead of
// failing the whole server.
func (h *Handler) GetPaymentConfig(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.payments.Current()
	if !ok {
		writeMessage(w, http.StatusServiceUnavailable, "Payment configuration not available")
		return
	}

	writeJSON(w, http.StatusOK, PaymentConfigResponse{PublicKey: settings.PublicKey})
}
