// Package handlers wires the authorize and query services to HTTP routes.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cardnest/payment-gateway/internal/application/services"
)

type Handlers struct {
	authService  *services.AuthorizeService
	queryService *services.QueryService
	logger       *slog.Logger
}

func NewHandlers(
	authService *services.AuthorizeService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		authService:  authService,
		queryService: queryService,
		logger:       logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payments", h.HandleAuthorize)
	mux.HandleFunc("GET /payments/{id}", h.HandleGetPayment)
}
