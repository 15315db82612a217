package openai

import (
	"fmt"
	"net/http"

	oai "github.com/openai/openai-go"
)

// Config holds client configuration. Vendor selects a preset for BaseURL
// and Model when they are left empty.
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Vendor == "" {
		c.Vendor = ProviderOpenAI
	}
	p, ok := presets[c.Vendor]
	if !ok {
		return fmt.Errorf("openai: unknown vendor %q", c.Vendor)
	}
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required for %s", c.Vendor)
	}
	if c.Model == "" {
		c.Model = p.model
	}
	if c.BaseURL == "" {
		c.BaseURL = p.baseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// clientImpl is the internal implementation of IClient
type clientImpl struct {
	client oai.Client
	vendor string
	model  string
}

// Request represents a chat-completion request
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
	// JSONMode asks the vendor for a JSON object response.
	JSONMode bool
}

// Message is a single conversation turn
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Response represents a chat-completion response
type Response struct {
	Text         string
	FinishReason string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
