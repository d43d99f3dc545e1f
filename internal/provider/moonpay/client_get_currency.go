package moonpay

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"

	"github.com/shopspring/decimal"
)

const baseURL = "https://api.moonpay.com"

// Currency represents a currency listing from the MoonPay API.
type Currency struct {
	ID    string          `json:"id"`
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// GetCurrency retrieves one currency listing, including its USD price.
func (c *MoonPayAPIClient) GetCurrency(ctx context.Context, code string, opts ...MoonPayAPIClientOption) (*Currency, error) {
	var override = &MoonPayAPIClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	query := maps.Clone(override.query)

	url := fmt.Sprintf("%s/v3/currencies/%s?%s", override.baseURL, code, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = override.header

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusNotFound:
		return nil, fmt.Errorf("unknown currency %q", code)

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("unauthorized")

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("rate limited")

	default:
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var currency Currency
	if err := json.NewDecoder(res.Body).Decode(&currency); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &currency, nil
}
