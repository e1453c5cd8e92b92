package reddit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/metrics"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// apiError is a non-2xx response from the platform.
type apiError struct {
	Status     int
	Code       string
	Message    string
	RetryAfter time.Duration
}

func (e *apiError) Error() string {
	return fmt.Sprintf("reddit api: status %d: %s: %s", e.Status, e.Code, e.Message)
}

// client performs enveloped JSON calls against the ads API.
type client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *RateLimiter
	logger  *slog.Logger
}

// do sends body wrapped in an envelope (when non-nil) and decodes the
// response into out (when non-nil). rawURL may be absolute (pagination
// links) or relative to the base URL.
func (c *client) do(ctx context.Context, method, rawURL string, body, out any) error {
	target, err := c.resolve(rawURL)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(envelope[any]{Data: body})
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	if err = c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.PlatformRequests.WithLabelValues(string(domain.PlatformReddit), method, "error").Inc()
		return err
	}
	defer resp.Body.Close()

	retryAfter := c.limiter.Observe(resp)
	metrics.PlatformRequests.WithLabelValues(string(domain.PlatformReddit), method, strconv.Itoa(resp.StatusCode)).Inc()
	c.logger.Debug("reddit api call",
		slog.String("method", method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, retryAfter)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *client) resolve(rawURL string) (string, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if ref.IsAbs() {
		// Pagination links must not carry the token to another host.
		if ref.Scheme != c.baseURL.Scheme || ref.Host != c.baseURL.Host {
			return "", fmt.Errorf("refusing url %q outside %s://%s", rawURL, c.baseURL.Scheme, c.baseURL.Host)
		}
		return ref.String(), nil
	}
	base := *c.baseURL
	base.Path = strings.TrimRight(base.Path, "/") + "/" + strings.TrimLeft(ref.Path, "/")
	base.RawQuery = ref.RawQuery
	return base.String(), nil
}

func decodeError(resp *http.Response, retryAfter time.Duration) error {
	apiErr := &apiError{Status: resp.StatusCode, RetryAfter: retryAfter}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorBody
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil && body.Error.Code != "" {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
		for _, f := range body.Error.Fields {
			apiErr.Message += fmt.Sprintf("; %s: %s", f.Field, f.Message)
		}
	} else {
		apiErr.Code = "http_" + strconv.Itoa(resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests {
			apiErr.Code = "rate_limited"
		}
		apiErr.Message = strings.TrimSpace(string(raw))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}
	return apiErr
}

// classify turns a call error into the platform error recorded on an
// entity. Rate limits, server errors, timeouts and transport failures are
// retryable; other rejections are not.
func classify(err error) *domain.PlatformError {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		retryable := apiErr.Status == http.StatusTooManyRequests ||
			apiErr.Status == http.StatusRequestTimeout ||
			apiErr.Status >= 500
		return &domain.PlatformError{
			Code:       apiErr.Code,
			Message:    apiErr.Message,
			Retryable:  retryable,
			RetryAfter: apiErr.RetryAfter,
		}
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return &domain.PlatformError{Code: "timeout", Message: err.Error(), Retryable: true}
	case errors.Is(err, context.Canceled):
		return &domain.PlatformError{Code: "canceled", Message: err.Error(), Retryable: true}
	case errors.As(err, &netErr):
		return &domain.PlatformError{Code: "transport_error", Message: err.Error(), Retryable: true}
	}
	return &domain.PlatformError{Code: "invalid_response", Message: err.Error()}
}
