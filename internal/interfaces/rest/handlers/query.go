package handlers

import (
	"net/http"

	"github.com/cardnest/payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryService.GetPayment(r.Context(), r.PathValue("id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToPaymentResponse(result))
}
