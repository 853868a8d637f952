package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// Kind selects the client implementation used to talk to a provider.
// Most vendors expose an OpenAI-compatible chat endpoint and only differ
// in their base URL.
type Kind string

const (
	KindOpenAI    Kind = "openai"
	KindAnthropic Kind = "anthropic"
	KindGoogle    Kind = "google"
)

type Provider struct {
	ID   string
	Name string

	Kind Kind

	// BaseURL is empty for providers using their SDK default endpoint.
	BaseURL string

	Models  []string
	Default string
}

var ErrUnknownProvider = errors.New("unknown provider")

var providers = []Provider{
	{
		ID:   "openai",
		Name: "OpenAI",

		Kind: KindOpenAI,

		Models:  []string{"gpt-4o", "gpt-4o-mini", "gpt-4", "gpt-3.5-turbo"},
		Default: "gpt-4o",
	},

	{
		ID:   "anthropic",
		Name: "Anthropic",

		Kind: KindAnthropic,

		Models:  []string{"claude-3-opus-20240229", "claude-3-sonnet-20240229", "claude-3-haiku-20240307"},
		Default: "claude-3-sonnet-20240229",
	},

	{
		ID:   "google",
		Name: "Google Gemini",

		Kind: KindGoogle,

		Models:  []string{"gemini-pro", "gemini-flash", "gemini-ultra"},
		Default: "gemini-pro",
	},

	{
		ID:   "deepseek",
		Name: "DeepSeek",

		Kind:    KindOpenAI,
		BaseURL: "https://api.deepseek.com/v1/",

		Models:  []string{"deepseek-chat", "deepseek-coder", "deepseek-67b"},
		Default: "deepseek-chat",
	},

	{
		ID:   "meta",
		Name: "Meta Llama",

		Kind:    KindOpenAI,
		BaseURL: "https://api.llama-api.com/",

		Models:  []string{"llama-3-70b", "llama-3-8b", "llama-2-70b"},
		Default: "llama-3-70b",
	},

	{
		ID:   "mistral",
		Name: "Mistral AI",

		Kind:    KindOpenAI,
		BaseURL: "https://api.mistral.ai/v1/",

		Models:  []string{"mistral-large", "mistral-medium", "mistral-small"},
		Default: "mistral-large",
	},

	{
		ID:   "groq",
		Name: "Groq",

		Kind:    KindOpenAI,
		BaseURL: "https://api.groq.com/openai/v1/",

		Models:  []string{"mixtral-8x7b-32768", "llama2-70b-4096", "gemma-7b-it"},
		Default: "mixtral-8x7b-32768",
	},

	{
		ID:   "together",
		Name: "Together AI",

		Kind:    KindOpenAI,
		BaseURL: "https://api.together.xyz/v1/",

		Models:  []string{"meta-llama/Llama-2-70b-chat-hf", "mistralai/Mixtral-8x7B-Instruct-v0.1"},
		Default: "meta-llama/Llama-2-70b-chat-hf",
	},

	{
		ID:   "fireworks",
		Name: "Fireworks AI",

		Kind:    KindOpenAI,
		BaseURL: "https://api.fireworks.ai/inference/v1/",

		Models:  []string{"accounts/fireworks/models/llama-v2-70b-chat", "accounts/fireworks/models/mixtral-8x7b-instruct"},
		Default: "accounts/fireworks/models/llama-v2-70b-chat",
	},

	{
		ID:   "nvidia",
		Name: "NVIDIA NIM",

		Kind:    KindOpenAI,
		BaseURL: "https://integrate.api.nvidia.com/v1/",

		Models:  []string{"nvidia/llama3-chatqa-1.5-70b", "nvidia/llama3-chatqa-1.5-8b"},
		Default: "nvidia/llama3-chatqa-1.5-70b",
	},
}

// Providers returns the catalog in its declared order, merged with any
// extra models from the ADDITIONAL_MODELS environment variable. The
// variable holds a JSON object mapping provider IDs to model lists.
func Providers() []Provider {
	result := make([]Provider, len(providers))
	copy(result, providers)

	additional := parseAdditional(os.Getenv("ADDITIONAL_MODELS"))

	for i, p := range result {
		extra, ok := additional[p.ID]

		if !ok {
			continue
		}

		models := make([]string, len(p.Models))
		copy(models, p.Models)

		for _, m := range extra {
			if m == "" || contains(models, m) {
				continue
			}

			models = append(models, m)
		}

		result[i].Models = models
	}

	return result
}

func Lookup(id string) (*Provider, error) {
	for _, p := range Providers() {
		if p.ID == id {
			return &p, nil
		}
	}

	return nil, ErrUnknownProvider
}

// ValidateKey checks the shape of an API key before any request is made.
// Keys that fail here never reach the provider.
func ValidateKey(provider, key string) bool {
	key = strings.TrimSpace(key)

	if key == "" {
		return false
	}

	switch provider {
	case "openai", "deepseek":
		return strings.HasPrefix(key, "sk-")

	case "anthropic":
		return strings.HasPrefix(key, "sk-ant-")

	case "google":
		return strings.HasPrefix(key, "AIzaSy")

	case "groq":
		return strings.HasPrefix(key, "gsk_")

	case "meta", "mistral", "together", "fireworks", "nvidia":
		return len(key) > 20

	default:
		return len(key) > 10
	}
}

func parseAdditional(text string) map[string][]string {
	if text == "" {
		return nil
	}

	var result map[string][]string

	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil
	}

	return result
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}
