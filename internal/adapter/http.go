package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/config"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace ID.
const TraceIDHeader = "X-Trace-ID"

type httpAPIClient struct {
	client *utils.HTTPClient
	tokens TokenSource

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHTTPAPIClient constructs the resty implementation of [APIClient].
// It normalises and validates adapterCfg.BaseURL and applies
// adapterCfg.RequestTimeout to every request. tokens may be nil, in which
// case requests are always anonymous.
func NewHTTPAPIClient(adapterCfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &httpAPIClient{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokens:   tokens,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [APIClient].
func (h *httpAPIClient) Do(ctx context.Context, method, path string, body []byte) (string, error) {
	method = strings.ToUpper(method)
	if !supportedMethod(method) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	traceID := h.traceIDs.Generate()
	req := h.authedRequest(ctx).SetHeader(TraceIDHeader, traceID)
	if body != nil {
		req.SetBody(body)
	}

	log := h.logger.With().
		Str("trace_id", traceID).
		Str("method", method).
		Str("path", path).
		Logger()

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).Dur("duration", time.Since(start)).Msg("api request failed")
		return "", &APIError{Err: err}
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("api request")

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.tokens == nil {
		return req
	}
	if token := h.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func supportedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
