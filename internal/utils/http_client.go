package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client configured for talking to
// a novera server.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().SetResult(&novels).Get("/novels")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose requests are resolved against baseURL.
// A zero timeout leaves resty's default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// WithToken returns a request carrying the bearer token.
func (c *HTTPClient) WithToken(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}
