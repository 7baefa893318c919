package services

import (
	"context"
	"log/slog"

	"github.com/cardnest/payment-gateway/internal/application"
	"github.com/cardnest/payment-gateway/internal/domain"
)

// AuthorizeService orchestrates a single authorization attempt: validate
// the raw input in a fixed order, call the bank, persist exactly one
// terminal payment, and project it for the caller.
type AuthorizeService struct {
	store      application.PaymentStore
	bankClient application.BankClient
	logger     *slog.Logger
}

func NewAuthorizeService(
	store application.PaymentStore,
	bankClient application.BankClient,
	logger *slog.Logger,
) *AuthorizeService {
	return &AuthorizeService{
		store:      store,
		bankClient: bankClient,
		logger:     logger,
	}
}

// Authorize runs the pipeline, short-circuiting on the first failure.
// Nothing is persisted on a validation or bank failure; on a bank reply
// the outcome is stored whether authorized or declined.
func (s *AuthorizeService) Authorize(ctx context.Context, cmd AuthorizeCommand) (*PaymentResult, error) {
	paymentID := domain.NewPaymentID()

	card, err := domain.NewCardNumber(cmd.CardNumber)
	if err != nil {
		return nil, s.reject(paymentID, err)
	}

	expiry, err := domain.NewExpiryDate(cmd.ExpiryMonth, cmd.ExpiryYear)
	if err != nil {
		return nil, s.reject(paymentID, err)
	}

	currency, err := domain.NewCurrency(cmd.Currency)
	if err != nil {
		return nil, s.reject(paymentID, err)
	}

	money, err := domain.NewMoney(cmd.Amount, currency)
	if err != nil {
		return nil, s.reject(paymentID, err)
	}

	cvv, err := domain.NewCvv(cmd.CVV)
	if err != nil {
		return nil, s.reject(paymentID, err)
	}

	bankReq := application.BankAuthorizationRequest{
		CardNumber: card.Value(),
		ExpiryDate: expiry.Format(),
		Currency:   currency.Code(),
		Amount:     money.Amount(),
		Cvv:        cvv.Value(),
	}

	bankResp, err := s.bankClient.Authorize(ctx, bankReq)
	if err != nil {
		s.logger.Error("bank authorization failed",
			"payment_id", paymentID,
			"error", err,
		)
		return nil, err
	}

	// An approval must carry a code; a missing one is a protocol
	// violation by the bank, not an internal fault.
	if bankResp.Authorized && (bankResp.AuthorizationCode == nil || *bankResp.AuthorizationCode == "") {
		bankErr := &application.BankError{
			Code:    application.ErrCodeBankInvalidResponse,
			Message: "bank authorized the payment without an authorization code",
		}
		s.logger.Error("bank authorization failed",
			"payment_id", paymentID,
			"error", bankErr,
		)
		return nil, bankErr
	}

	payment, err := s.buildPayment(paymentID, card, expiry, money, bankResp)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	// A duplicate identifier here means the ID generator broke, not a
	// business failure.
	if err := s.store.Add(payment); err != nil {
		s.logger.Error("failed to persist payment",
			"payment_id", paymentID,
			"error", err,
		)
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment processed",
		"payment_id", paymentID,
		"status", payment.Status(),
		"card", card.Masked(),
		"amount", money.Amount(),
		"currency", currency.Code(),
	)

	return toResult(payment, true), nil
}

func (s *AuthorizeService) buildPayment(
	id domain.PaymentID,
	card domain.CardNumber,
	expiry domain.ExpiryDate,
	money domain.Money,
	bankResp *application.BankAuthorizationResponse,
) (*domain.Payment, error) {
	if bankResp.Authorized {
		code := ""
		if bankResp.AuthorizationCode != nil {
			code = *bankResp.AuthorizationCode
		}
		return domain.NewAuthorizedPayment(id, card, expiry, money, code)
	}
	return domain.NewDeclinedPayment(id, card, expiry, money)
}

func (s *AuthorizeService) reject(id domain.PaymentID, err error) error {
	s.logger.Info("payment rejected",
		"payment_id", id,
		"error", err,
	)
	return err
}
