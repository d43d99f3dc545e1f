package moonpay

import (
	"net/http"
	"net/url"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=moonpay_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MoonPayAPIClient is a client for the MoonPay API.
type MoonPayAPIClient struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
}

// MoonPayAPIClientOption is a configuration option for the MoonPay API client.
type MoonPayAPIClientOption func(*MoonPayAPIClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) MoonPayAPIClientOption {
	return func(c *MoonPayAPIClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) MoonPayAPIClientOption {
	return func(c *MoonPayAPIClient) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) MoonPayAPIClientOption {
	return func(c *MoonPayAPIClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewMoonPayAPIClient creates a new MoonPay API client.
func NewMoonPayAPIClient(key string, options ...MoonPayAPIClientOption) (*MoonPayAPIClient, error) {
	var moonPayAPIClient = &MoonPayAPIClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
	}
	if key != "" {
		// MoonPay authenticates public endpoints via an apiKey query parameter.
		// https://docs.moonpay.com/
		moonPayAPIClient.query.Add("apiKey", key)
	}
	for _, option := range options {
		option(moonPayAPIClient)
	}
	return moonPayAPIClient, nil
}
