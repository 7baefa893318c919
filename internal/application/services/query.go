package services

import (
	"context"
	"errors"

	"github.com/cardnest/payment-gateway/internal/application"
	"github.com/cardnest/payment-gateway/internal/domain"
)

// QueryService answers payment lookups from the store.
type QueryService struct {
	store application.PaymentStore
}

func NewQueryService(store application.PaymentStore) *QueryService {
	return &QueryService{
		store: store,
	}
}

// GetPayment parses the supplied identifier and projects the stored
// payment. The authorization code is never included on lookups.
func (s *QueryService) GetPayment(ctx context.Context, rawID string) (*PaymentResult, error) {
	id, err := domain.ParsePaymentID(rawID)
	if err != nil {
		return nil, err
	}

	payment, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			return nil, application.NewNotFoundError(id)
		}
		return nil, application.NewInternalError(err)
	}

	return toResult(payment, false), nil
}
