package llmprovider

import (
	"context"
	"errors"
	"net/http"

	"voice-notes/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai (OpenAI, DeepSeek, Qwen) to llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IClient
}

// NewOpenAIAdapter creates a new adapter for an OpenAI-compatible client
func NewOpenAIAdapter(client openai.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	oaiReq := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONResponse,
		Messages:    make([]openai.Message, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		oaiReq.System = req.SystemInstruction.Text()
	}
	for _, m := range req.Messages {
		oaiReq.Messages = append(oaiReq.Messages, openai.Message{Role: m.Role, Content: m.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, oaiReq)
	if err != nil {
		var statusErr *openai.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests {
			err = errors.Join(ErrProviderRateLimited, err)
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: resp.Text}},
		},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.client.Vendor()
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
