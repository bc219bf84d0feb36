// Package paystack is a minimal client for the Paystack REST API, covering
// the two endpoints the platform consumes: bank account resolution and the
// supported-banks list.
package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/david-jerry/iwitness/internal/errors"
)

// ResolveData is the payload of a successful account resolution.
type ResolveData struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

// ResolveResponse is the envelope returned by GET /bank/resolve.
type ResolveResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    ResolveData `json:"data"`
}

// BankData is one entry of the supported-banks list.
type BankData struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Code     string `json:"code"`
	LongCode string `json:"longcode"`
	Country  string `json:"country"`
}

type banksResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    []BankData `json:"data"`
}

// Client talks to the bank resolution service.
type Client interface {
	// ResolveAccount looks up the holder of an account number at a bank.
	// The returned envelope is handed to the caller unjudged; deciding
	// whether the resolution is acceptable is the verifier's job.
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*ResolveResponse, error)
	// ListBanks fetches the supported banks for a country.
	ListBanks(ctx context.Context, country string) ([]BankData, error)
}

type client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a Paystack client with a bearer secret and request timeout.
func NewClient(baseURL, secretKey string, timeout time.Duration) Client {
	return &client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ResolveAccount implements Client. A transport failure or a non-2xx status
// surfaces as ErrExternalService; anything the service answered with 2xx is
// decoded and returned as-is.
func (c *client) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*ResolveResponse, error) {
	endpoint := fmt.Sprintf("%s/bank/resolve?account_number=%s&bank_code=%s",
		c.baseURL, url.QueryEscape(accountNumber), url.QueryEscape(bankCode))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resolved ResolveResponse
	if err := json.Unmarshal(body, &resolved); err != nil {
		// Unexpected body shape counts as a failed resolution, not an outage.
		return nil, fmt.Errorf("%w: malformed response body", apperrors.ErrResolutionFailed)
	}
	return &resolved, nil
}

// ListBanks implements Client.
func (c *client) ListBanks(ctx context.Context, country string) ([]BankData, error) {
	endpoint := fmt.Sprintf("%s/bank?country=%s", c.baseURL, url.QueryEscape(country))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var banks banksResponse
	if err := json.Unmarshal(body, &banks); err != nil {
		return nil, fmt.Errorf("%w: malformed response body", apperrors.ErrExternalService)
	}
	if !banks.Status {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrExternalService, banks.Message)
	}
	return banks.Data, nil
}

func (c *client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalService, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrExternalService, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalService, err)
	}
	return body, nil
}
