// Package bank talks to the acquiring bank over HTTP.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cardnest/payment-gateway/internal/application"
	"github.com/cardnest/payment-gateway/internal/config"
)

// HTTPBankClient issues one outbound POST per logical authorization
// attempt. Every failure mode is converted to an *application.BankError,
// except caller cancellation, which propagates unchanged.
type HTTPBankClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBankClient(cfg config.BankConfig) application.BankClient {
	return &HTTPBankClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

// bankErrorBody is the bank's error envelope on non-success statuses.
type bankErrorBody struct {
	Err     string `json:"error"`
	Message string `json:"message"`
}

func (c *HTTPBankClient) Authorize(ctx context.Context, req application.BankAuthorizationRequest) (*application.BankAuthorizationResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, &application.BankError{
			Code:    application.ErrCodeBankUnexpected,
			Message: fmt.Sprintf("error marshalling request: %v", err),
		}
	}

	endpoint := fmt.Sprintf("%s/payments", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, &application.BankError{
			Code:    application.ErrCodeBankUnexpected,
			Message: fmt.Sprintf("error creating request: %v", err),
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp)
	}

	var bankResp application.BankAuthorizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&bankResp); err != nil {
		return nil, &application.BankError{
			Code:       application.ErrCodeBankInvalidResponse,
			Message:    fmt.Sprintf("error decoding response body: %v", err),
			StatusCode: resp.StatusCode,
		}
	}

	return &bankResp, nil
}

// classifyStatus maps non-success statuses: 400 is a permanent rejection,
// 503 is the one transient signal the retry policy acts on, everything
// else is unexpected.
func classifyStatus(resp *http.Response) *application.BankError {
	body, _ := io.ReadAll(resp.Body)

	message := string(body)
	var errBody bankErrorBody
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Message != "" {
		message = errBody.Message
	}

	switch resp.StatusCode {
	case http.StatusServiceUnavailable:
		return &application.BankError{
			Code:       application.ErrCodeBankUnavailable,
			Message:    "bank is temporarily unavailable",
			StatusCode: resp.StatusCode,
		}
	case http.StatusBadRequest:
		return &application.BankError{
			Code:       application.ErrCodeBankBadRequest,
			Message:    fmt.Sprintf("bank rejected the request: %s", message),
			StatusCode: resp.StatusCode,
		}
	default:
		return &application.BankError{
			Code:       application.ErrCodeBankUnexpected,
			Message:    fmt.Sprintf("bank returned status %d: %s", resp.StatusCode, message),
			StatusCode: resp.StatusCode,
		}
	}
}

func classifyTransportError(err error) error {
	// Caller cancellation is not a bank fault; propagate it so the
	// pipeline aborts the same way it does during a backoff wait.
	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &application.BankError{
			Code:    application.ErrCodeBankTimeout,
			Message: fmt.Sprintf("bank request timed out: %v", err),
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &application.BankError{
			Code:    application.ErrCodeBankTimeout,
			Message: fmt.Sprintf("bank request timed out: %v", err),
		}
	}

	return &application.BankError{
		Code:    application.ErrCodeBankConnection,
		Message: fmt.Sprintf("error connecting to bank: %v", err),
	}
}
