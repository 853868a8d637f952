package otel

import (
	"context"

	"github.com/ordemia/ordemia/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	model    string
	provider string

	completer provider.Completer
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	return &observableCompleter{
		completer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "chat "+p.model)
	defer span.End()

	span.SetAttributes(
		attribute.String("gen_ai.provider.name", p.provider),
		attribute.String("gen_ai.request.model", p.model),
	)

	result, err := p.completer.Complete(ctx, messages, options)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if result.Usage != nil {
		span.SetAttributes(
			attribute.Int("gen_ai.usage.input_tokens", result.Usage.InputTokens),
			attribute.Int("gen_ai.usage.output_tokens", result.Usage.OutputTokens),
		)
	}

	return result, nil
}
