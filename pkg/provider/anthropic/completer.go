package anthropic

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/ordemia/ordemia/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
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
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req, err := c.convertMessageRequest(messages, options)

	if err != nil {
		return nil, err
	}

	message, err := c.messages.New(ctx, *req)

	if err != nil {
		return nil, convertError(err)
	}

	result := &provider.Completion{
		ID:    message.ID,
		Model: c.model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: toUsage(message.Usage),
	}

	for _, block := range message.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			result.Message.Content = append(result.Message.Content, provider.TextContent(block.Text))
		}
	}

	return result, nil
}

func (c *Completer) convertMessageRequest(input []provider.Message, options *provider.CompleteOptions) (*anthropic.MessageNewParams, error) {
	req := &anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: 4096,
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	var system []anthropic.TextBlockParam
	var messages []anthropic.MessageParam

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			for _, c := range m.Content {
				if c.Text != "" {
					system = append(system, anthropic.TextBlockParam{Text: c.Text})
				}
			}

		case provider.MessageRoleUser:
			var blocks []anthropic.ContentBlockParamUnion

			for _, c := range m.Content {
				if text := strings.TrimRight(c.Text, " \t\n\r"); text != "" {
					blocks = append(blocks, anthropic.NewTextBlock(text))
				}

				if c.File != nil {
					mime := c.File.ContentType
					content := base64.StdEncoding.EncodeToString(c.File.Content)

					switch mime {
					case "image/jpeg", "image/png", "image/gif", "image/webp":
						blocks = append(blocks, anthropic.NewImageBlock(anthropic.Base64ImageSourceParam{
							Data:      content,
							MediaType: anthropic.Base64ImageSourceMediaType(mime),
						}))

					case "application/pdf":
						blocks = append(blocks, anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
							Data: content,
						}))

					default:
						return nil, errors.New("unsupported content type")
					}
				}
			}

			messages = append(messages, anthropic.NewUserMessage(blocks...))

		case provider.MessageRoleAssistant:
			if text := m.Text(); text != "" {
				messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(text)))
			}
		}
	}

	if len(system) > 0 {
		req.System = system
	}

	req.Messages = messages

	return req, nil
}

func toUsage(usage anthropic.Usage) *provider.Usage {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.InputTokens),
		OutputTokens: int(usage.OutputTokens),
	}
}

func convertError(err error) error {
	var apierr *anthropic.Error

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
