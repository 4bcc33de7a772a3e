// Package fraudapi implements the outbound HTTP client for the external
// fraud-scoring service.
package fraudapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"secureorder/internal/core/domain/model/fraud"
	"secureorder/internal/core/domain/model/kernel"
)

var (
	// ErrUnavailable indicates the fraud service could not be reached within
	// the configured timeouts.
	ErrUnavailable = errors.New("fraud service is unavailable")
	// ErrRemoteStatus indicates the fraud service answered with an error status.
	ErrRemoteStatus = errors.New("fraud service returned an error status")
)

const (
	defaultConnectTimeout = 3 * time.Second
	defaultRequestTimeout = 5 * time.Second
)

// checkFraudRequest is the wire payload sent to the fraud service.
type checkFraudRequest struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
}

// Client calls the fraud service over HTTP. It implements ports.FraudChecker.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a fraud service client for the given base URL.
// Connection attempts give up after 3 seconds, whole requests after 5.
func NewClient(baseURL string) *Client {
	dialer := &net.Dialer{Timeout: defaultConnectTimeout}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
			Transport: &http.Transport{
				DialContext: dialer.DialContext,
			},
		},
	}
}

// CheckFraud submits the order for risk analysis and returns the result.
// Connectivity failures wrap ErrUnavailable so callers can distinguish an
// unreachable service from a service that rejected the request, which wraps
// ErrRemoteStatus.
func (c *Client) CheckFraud(
	ctx context.Context,
	orderID kernel.UUID,
	customerID string,
) (*fraud.Result, error) {
	body, err := json.Marshal(checkFraudRequest{
		OrderID:    orderID.String(),
		CustomerID: customerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fraud check request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/risks", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create fraud check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrRemoteStatus, resp.StatusCode)
	}

	var result fraud.Result
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode fraud check response: %w", err)
	}

	return &result, nil
}
