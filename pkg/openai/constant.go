package openai

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

// preset carries the endpoint and default model of an OpenAI-compatible vendor.
type preset struct {
	baseURL string
	model   string
}

// presets maps a vendor name to its chat-completions endpoint. An empty
// baseURL keeps the SDK default.
var presets = map[string]preset{
	ProviderOpenAI:   {model: "gpt-4o-mini"},
	ProviderDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
	ProviderQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	"alibaba":        {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
}
