package openai

import (
	"context"
	"errors"
	"fmt"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

// newClientImpl creates a new SDK-backed implementation. SDK retries are
// disabled so callers see exactly one HTTP call per GenerateContent.
func newClientImpl(cfg Config) *clientImpl {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(cfg.HTTPClient),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &clientImpl{
		client: oai.NewClient(opts...),
		vendor: cfg.Vendor,
		model:  cfg.Model,
	}
}

// GenerateContent sends a chat-completion request
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%s: request is nil", c.vendor)
	}

	resp, err := c.client.Chat.Completions.New(ctx, c.buildParams(req))
	if err != nil {
		var apiErr *oai.Error
		if errors.As(err, &apiErr) {
			return nil, &StatusError{Vendor: c.vendor, StatusCode: apiErr.StatusCode, Err: err}
		}
		return nil, fmt.Errorf("%s: chat completion: %w", c.vendor, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: empty choices in response", c.vendor)
	}

	choice := resp.Choices[0]
	return &Response{
		Text:         choice.Message.Content,
		FinishReason: choice.FinishReason,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}

// Vendor returns the configured vendor name
func (c *clientImpl) Vendor() string {
	return c.vendor
}

// buildParams converts a Request into SDK params.
func (c *clientImpl) buildParams(req *Request) oai.ChatCompletionNewParams {
	var messages []oai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, oai.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		if m.Role == "assistant" {
			messages = append(messages, oai.AssistantMessage(m.Content))
			continue
		}
		messages = append(messages, oai.UserMessage(m.Content))
	}

	params := oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = param.NewOpt(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = param.NewOpt(int64(req.MaxTokens))
	}
	if req.JSONMode {
		params.ResponseFormat = oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}

// StatusError reports a non-2xx answer from the vendor.
type StatusError struct {
	Vendor     string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: API error %d: %v", e.Vendor, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
