package openai

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/ordemia/ordemia/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Completer = (*Completer)(nil)

// Completer also serves every OpenAI-compatible provider (DeepSeek,
// Mistral, Groq, Together, Fireworks) through the url option.
type Completer struct {
	*Config
	client openai.Client
}

func New(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
		client: openai.NewClient(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req, err := c.convertCompletionRequest(messages, options)

	if err != nil {
		return nil, err
	}

	completion, err := c.client.Chat.Completions.New(ctx, *req)

	if err != nil {
		return nil, convertError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no choices in completion")
	}

	choice := completion.Choices[0]

	result := &provider.Completion{
		ID:    completion.ID,
		Model: completion.Model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},
	}

	if choice.Message.Content != "" {
		result.Message.Content = append(result.Message.Content, provider.TextContent(choice.Message.Content))
	}

	if val := toUsage(completion.Usage); val != nil {
		result.Usage = val
	}

	return result, nil
}

func (c *Completer) convertCompletionRequest(input []provider.Message, options *provider.CompleteOptions) (*openai.ChatCompletionNewParams, error) {
	messages, err := convertMessages(input)

	if err != nil {
		return nil, err
	}

	req := &openai.ChatCompletionNewParams{
		Model: c.model,
	}

	if len(messages) > 0 {
		req.Messages = messages
	}

	if options.Format == provider.CompletionFormatJSON {
		req.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	if options.Schema != nil {
		schema := openai.ResponseFormatJSONSchemaJSONSchemaParam{
			Name:   options.Schema.Name,
			Schema: options.Schema.Schema,
		}

		if options.Schema.Description != "" {
			schema.Description = openai.String(options.Schema.Description)
		}

		if options.Schema.Strict != nil {
			schema.Strict = openai.Bool(*options.Schema.Strict)
		}

		req.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schema,
			},
		}
	}

	if options.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	return req, nil
}

func convertMessages(input []provider.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	var result []openai.ChatCompletionMessageParamUnion

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			result = append(result, openai.SystemMessage(m.Text()))

		case provider.MessageRoleUser:
			parts := []openai.ChatCompletionContentPartUnionParam{}

			for _, c := range m.Content {
				if c.Text != "" {
					parts = append(parts, openai.TextContentPart(c.Text))
				}

				if c.File != nil {
					mime := c.File.ContentType
					content := base64.StdEncoding.EncodeToString(c.File.Content)

					switch mime {
					case "image/png", "image/jpeg", "image/webp", "image/gif":
						imageURL := openai.ChatCompletionContentPartImageImageURLParam{
							URL: "data:" + mime + ";base64," + content,
						}

						parts = append(parts, openai.ImageContentPart(imageURL))

					default:
						return nil, errors.New("unsupported content type")
					}
				}
			}

			result = append(result, openai.UserMessage(parts))

		case provider.MessageRoleAssistant:
			result = append(result, openai.AssistantMessage(m.Text()))
		}
	}

	return result, nil
}

func toUsage(metadata openai.CompletionUsage) *provider.Usage {
	if metadata.TotalTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokens),
		OutputTokens: int(metadata.CompletionTokens),
	}
}

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401, 403:
			return provider.AuthError(err)
		}
	}

	if provider.IsAuthorization(err) {
		return provider.AuthError(err)
	}

	return err
}
