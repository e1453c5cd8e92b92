package configs

import "time"

// Reddit configures the Reddit ads API adapter.
type Reddit struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://ads-api.reddit.com/api/v3"`
	// Timeout bounds every single API call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// RPS is the proactive request rate shared by all jobs. Zero disables it.
	RPS float64 `env:"RPS" envDefault:"1"`
	// MaxPages caps pagination when looking up existing entities.
	MaxPages int `env:"MAX_PAGES" envDefault:"50"`
}
