package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cardnest/payment-gateway/internal/application"
	"github.com/cardnest/payment-gateway/internal/application/services"
	"github.com/cardnest/payment-gateway/internal/interfaces/rest"
)

type AuthorizePaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	Cvv         string `json:"cvv"`
}

func (h *Handlers) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	var req AuthorizePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, &application.ServiceError{
			Code:       "request.invalid_body",
			Message:    "request body must be valid JSON",
			HTTPStatus: http.StatusBadRequest,
			Err:        err,
		}, h.logger)
		return
	}

	cmd := services.AuthorizeCommand{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		CVV:         req.Cvv,
	}

	result, err := h.authService.Authorize(r.Context(), cmd)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.ToPaymentResponse(result))
}
