package openai

import (
	"time"

	"github.com/forecourt-labs/shiftscan/internal/common"
)

// Config holds the chat/completions endpoint settings. Text and vision calls
// may use different models; everything else is shared.
type Config struct {
	BaseURL     string
	Model       string
	VisionModel string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

func FromAppConfig(cfg common.LLMConfig) Config {
	return Config{
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		VisionModel: cfg.VisionModel,
		APIKey:      cfg.APIKey,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.VisionModel == "" {
		c.VisionModel = c.Model
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
}
