// Package ai formats calendar prompts and talks to the upstream
// generative-text service.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"math-calendar-api/utils"
)

// ErrNoAPIKey means the upstream credential was never configured. Callers
// surface it as a stable configuration error; it is never retried.
var ErrNoAPIKey = errors.New("GEMINI_API_KEY not set on server")

// Config holds the upstream provider configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig targets Gemini through its OpenAI-compatible endpoint.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/",
		Model:   "gemini-2.5-flash",
		Timeout: 30 * time.Second,
	}
}

// Provider is a single-shot client for the upstream text-generation service.
// No retries: a failed call is logged and reported to the caller once.
type Provider struct {
	client *openai.Client
	config *Config
}

func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	return &Provider{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Enabled reports whether a credential is configured.
func (p *Provider) Enabled() bool {
	return p.config.APIKey != ""
}

// Generate sends one prompt upstream and returns the generated text. The
// prompt is truncated to the input budget here as well, so the cap holds no
// matter which path built the prompt.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	if !p.Enabled() {
		return "", ErrNoAPIKey
	}

	prompt = Truncate(prompt)

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	start := time.Now()
	utils.LogAI("Sending prompt to %s (%d chars)", p.config.Model, len(prompt))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		utils.LogError("Upstream generation failed after %v: %v", time.Since(start), err)
		return "", fmt.Errorf("upstream generation failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		utils.LogError("Upstream returned empty text after %v", time.Since(start))
		return "", errors.New("upstream returned empty text")
	}

	text := resp.Choices[0].Message.Content
	utils.LogAI("Generation completed in %v (%d chars)", time.Since(start), len(text))
	return text, nil
}

// NewProviderFromEnv builds a provider from GEMINI_* environment variables.
func NewProviderFromEnv() *Provider {
	return NewProvider(&Config{
		APIKey:  utils.GetEnvOrDefault("GEMINI_API_KEY", ""),
		BaseURL: utils.GetEnvOrDefault("GEMINI_BASE_URL", DefaultConfig().BaseURL),
		Model:   utils.GetEnvOrDefault("GEMINI_MODEL", DefaultConfig().Model),
		Timeout: time.Duration(utils.GetEnvInt("GEMINI_TIMEOUT_SECONDS", 30)) * time.Second,
	})
}
