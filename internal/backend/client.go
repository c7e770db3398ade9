package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tourgate/internal/config"
	"tourgate/internal/domain"
	"tourgate/internal/logger"
	"tourgate/internal/metrics"
)

// Client talks to the core booking backend. Every call forwards the caller's
// opaque session cookie and runs under the request's context so an aborted
// gateway request cancels the upstream fetch too.
type Client struct {
	baseURL    string
	cookieName string
	timeout    time.Duration
	httpClient *http.Client
	log        logger.Logger
	metrics    *metrics.Metrics
}

// New builds a client against the configured backend origin.
func New(cfg config.Config, log logger.Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL:    cfg.BackendBaseURL,
		cookieName: cfg.SessionCookie,
		timeout:    cfg.UpstreamTimeout,
		httpClient: &http.Client{},
		log:        log,
		metrics:    m,
	}
}

// upstreamEnvelope covers the error body shapes the core backend emits.
type upstreamEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	_, err := c.doSetCookies(ctx, op, method, path, token, body, out)
	return err
}

// doSetCookies is do plus capture of the raw Set-Cookie headers the backend
// attached. The auth calls need them: session cookies are minted and cleared
// upstream, and the gateway hands them to the browser verbatim.
func (c *Client) doSetCookies(ctx context.Context, op, method, path, token string, body, out any) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, domain.InternalError{Msg: "encode request", Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, domain.InternalError{Msg: "build request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: token})
	}

	if c.metrics != nil {
		c.metrics.UpstreamCalls.WithLabelValues(op).Inc()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.UpstreamErrors.WithLabelValues(op).Inc()
		}
		c.log.Error("backend call failed", "op", op, "path", path, "error", err)
		return nil, domain.UnavailableError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.metrics != nil {
			c.metrics.UpstreamErrors.WithLabelValues(op).Inc()
		}
		var envelope upstreamEnvelope
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(raw, &envelope)
		msg := envelope.Message
		if msg == "" {
			msg = envelope.Error
		}
		c.log.Warn("backend returned error", "op", op, "status", resp.StatusCode, "msg", msg)
		return nil, domain.UpstreamError{Status: resp.StatusCode, Msg: msg}
	}

	setCookies := resp.Header.Values("Set-Cookie")

	if out == nil {
		return setCookies, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, domain.InternalError{Msg: fmt.Sprintf("decode %s response", op), Err: err}
	}
	return setCookies, nil
}
