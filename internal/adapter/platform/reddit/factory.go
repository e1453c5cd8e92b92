package reddit

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// Config holds the connection settings shared by every adapter.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	RPS      float64
	MaxPages int
}

// Factory builds a fresh Adapter per sync job. The rate limiter is shared
// so concurrent jobs respect the same proactive quota.
type Factory struct {
	cfg     Config
	base    *url.URL
	limiter *RateLimiter
	logger  *slog.Logger
}

var _ port.AdapterFactory = (*Factory)(nil)

func NewFactory(cfg Config, logger *slog.Logger) (*Factory, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse reddit base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("reddit base url %q must be absolute", cfg.BaseURL)
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}

	return &Factory{
		cfg:     cfg,
		base:    base,
		limiter: NewRateLimiter(cfg.RPS),
		logger:  logger.With(slog.String("platform", string(domain.PlatformReddit))),
	}, nil
}

func (f *Factory) NewAdapter(
	ctx context.Context,
	platform domain.Platform,
	cfg port.AdapterConfig,
) (port.PlatformAdapter, error) {
	if platform != domain.PlatformReddit {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, platform)
	}
	if cfg.TokenSource == nil {
		return nil, fmt.Errorf("reddit adapter: %w", port.ErrCredentialUnavailable)
	}

	// ctx only supplies an optional base *http.Client (oauth2.HTTPClient).
	httpClient := oauth2.NewClient(ctx, cfg.TokenSource)
	httpClient.Timeout = f.cfg.Timeout

	return &Adapter{
		c: &client{
			baseURL: f.base,
			http:    httpClient,
			limiter: f.limiter,
			logger:  f.logger,
		},
		accountID:           cfg.AccountRemoteID,
		fundingInstrumentID: cfg.FundingInstrumentID,
		maxPages:            f.cfg.MaxPages,
	}, nil
}


func (f *Factory) Supports(platform domain.Platform) bool {
	return platform == domain.PlatformReddit
}
