package assets

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/lehigh-university-libraries/dossier/internal/config"
)

// retryStatuses are the gateway/origin errors worth another attempt.
var retryStatuses = map[int]bool{
	http.StatusBadGateway:         true,
	http.StatusServiceUnavailable: true,
	http.StatusGatewayTimeout:     true,
	522:                           true, // Cloudflare: connection timed out
	524:                           true, // Cloudflare: a timeout occurred
}

// NewHTTPClient builds the shared client used for every download of a run.
// Connection errors and retryStatuses are retried up to cfg.RetryMax times
// with exponential backoff starting at cfg.RetryWaitMin.
func NewHTTPClient(cfg config.Config, logger *slog.Logger) *http.Client {
	transport := cleanhttp.DefaultPooledTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.ResponseHeaderTimeout = cfg.ReadTimeout

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Transport: transport}
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = cfg.RetryWaitMin
	client.RetryWaitMax = cfg.RetryWaitMax
	client.Backoff = retryablehttp.DefaultBackoff
	client.CheckRetry = retryPolicy
	// retryablehttp treats Logger as an interface; never store a typed nil.
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}

	return client.StandardClient()
}

func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	return retryStatuses[resp.StatusCode], nil
}
