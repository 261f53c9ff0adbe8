package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so
// all of its methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty client rooted at baseURL.
// Every request carries JSON Content-Type and Accept headers and is bounded
// by timeout. Retries are disabled.
//
//	client := utils.NewHTTPClient("http://localhost:3000/api", 10*time.Second)
//	resp, err := client.R().Get("/buses")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
