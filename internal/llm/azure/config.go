package azure

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the Azure OpenAI client. Identity fields (key, endpoint,
// version, deployment) are validated at startup by common.Config; defaults
// here only cover tuning knobs.
type Config struct {
	APIKey      string        // api-key header value
	Endpoint    string        // e.g. https://myresource.openai.azure.com
	APIVersion  string        // e.g. 2024-05-01-preview
	Deployment  string        // deployment identifier on the Azure resource
	Temperature float32       // 0 for deterministic sampling
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
