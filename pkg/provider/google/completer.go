package google

import (
	"context"
	"errors"

	"github.com/ordemia/ordemia/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
}

func New(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{}

	if system := convertSystem(messages); system != nil {
		config.SystemInstruction = system
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = genai.Ptr(*options.Temperature)
	}

	if options.Format == provider.CompletionFormatJSON || options.Schema != nil {
		config.ResponseMIMEType = "application/json"
	}

	contents, err := convertContents(messages)

	if err != nil {
		return nil, err
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, config)

	if err != nil {
		return nil, convertError(err)
	}

	result := &provider.Completion{
		ID:    uuid.New().String(),
		Model: c.model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: toUsage(resp.UsageMetadata),
	}

	if text := resp.Text(); text != "" {
		result.Message.Content = append(result.Message.Content, provider.TextContent(text))
	}

	return result, nil
}

func convertSystem(messages []provider.Message) *genai.Content {
	var parts []*genai.Part

	for _, m := range messages {
		if m.Role != provider.MessageRoleSystem {
			continue
		}

		for _, c := range m.Content {
			if c.Text != "" {
				parts = append(parts, genai.NewPartFromText(c.Text))
			}
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return genai.NewContentFromParts(parts, genai.RoleUser)
}

func convertContents(messages []provider.Message) ([]*genai.Content, error) {
	var result []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleUser:
			var parts []*genai.Part

			for _, c := range m.Content {
				if c.Text != "" {
					parts = append(parts, genai.NewPartFromText(c.Text))
				}

				if c.File != nil {
					parts = append(parts, genai.NewPartFromBytes(c.File.Content, c.File.ContentType))
				}
			}

			if len(parts) == 0 {
				return nil, errors.New("empty user message")
			}

			result = append(result, genai.NewContentFromParts(parts, genai.RoleUser))

		case provider.MessageRoleAssistant:
			if text := m.Text(); text != "" {
				result = append(result, genai.NewContentFromText(text, genai.RoleModel))
			}
		}
	}

	return result, nil
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}

func convertError(err error) error {
	var apierr genai.APIError

	if errors.As(err, &apierr) {
		switch apierr.Code {
		case 401, 403:
			return provider.AuthError(err)
		}
	}

	if provider.IsAuthorization(err) {
		return provider.AuthError(err)
	}

	return err
}
