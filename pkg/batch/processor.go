// Package batch orchestrates the per-file extraction pipeline: text
// extraction, the provider call, response validation, and the final
// consolidation fold.
package batch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ordemia/ordemia/pkg/extractor"
	"github.com/ordemia/ordemia/pkg/order"
	"github.com/ordemia/ordemia/pkg/provider"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

type File struct {
	Name        string
	ContentType string

	Content []byte
}

type Option func(*Processor)

type Processor struct {
	completer provider.Completer
	extractor extractor.Provider

	concurrency int

	timeout     time.Duration
	maxFileSize int64
}

func New(completer provider.Completer, extractor extractor.Provider, options ...Option) *Processor {
	p := &Processor{
		completer: completer,
		extractor: extractor,

		concurrency: 4,

		timeout:     2 * time.Minute,
		maxFileSize: 10 << 20,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

func WithConcurrency(limit int) Option {
	return func(p *Processor) {
		if limit > 0 {
			p.concurrency = limit
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(p *Processor) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

func WithMaxFileSize(size int64) Option {
	return func(p *Processor) {
		if size > 0 {
			p.maxFileSize = size
		}
	}
}

// Run processes the batch with bounded parallelism and consolidates
// whatever subset of files succeeded. Per-file failures are isolated
// into the result's failed-file list. An authorization failure aborts
// the batch: remaining files are not attempted and no result is
// published.
func (p *Processor) Run(ctx context.Context, files []File) (*order.Result, error) {
	results := make([]order.FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, f := range files {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			records, err := p.processFile(gctx, f)

			if IsAuth(err) {
				return err
			}

			if err != nil {
				slog.ErrorContext(gctx, "file processing failed", "file", f.Name, "error", err)
			}

			results[i] = order.FileResult{
				File: f.Name,

				Records: records,
				Err:     err,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return order.Consolidate(results), nil
}

func (p *Processor) processFile(ctx context.Context, file File) ([]order.Record, error) {
	ctx, span := otel.Tracer("github.com/ordemia/ordemia/pkg/batch").Start(ctx, "process "+file.Name)
	defer span.End()

	if int64(len(file.Content)) > p.maxFileSize {
		return nil, newFailure(FailureFileTooLarge, file.Name, nil)
	}

	document, err := p.extractor.Extract(ctx, extractor.File{
		Name:        file.Name,
		Content:     file.Content,
		ContentType: file.ContentType,
	}, nil)

	if err != nil {
		if errors.Is(err, extractor.ErrUnsupported) {
			return nil, newFailure(FailureUnsupportedFormat, file.Name, err)
		}

		return nil, newFailure(FailureOcr, file.Name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	temperature := float32(0.1)

	messages := []provider.Message{
		provider.SystemMessage(systemPrompt),
		provider.UserMessage(userPrompt(document.Text)),
	}

	options := &provider.CompleteOptions{
		Temperature: &temperature,

		Format: provider.CompletionFormatJSON,
	}

	var invalid error

	// one retry for malformed responses. formatting noise is common
	// enough to warrant a second attempt, unbounded retries are not.
	for attempt := 0; attempt < 2; attempt++ {
		completion, err := p.completer.Complete(ctx, messages, options)

		if err != nil {
			return nil, newFailure(classify(err), file.Name, err)
		}

		var text string

		if completion.Message != nil {
			text = completion.Message.Text()
		}

		if err := order.ValidatePayload([]byte(text)); err != nil {
			invalid = err
			continue
		}

		records, err := order.Decode(file.Name, []byte(text))

		if err != nil {
			return nil, newFailure(FailureProviderResponseInvalid, file.Name, err)
		}

		return records, nil
	}

	return nil, newFailure(FailureProviderResponseInvalid, file.Name, invalid)
}

func classify(err error) FailureKind {
	if provider.IsAuthorization(err) {
		return FailureProviderAuth
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FailureProviderTimeout
	}

	return FailureProviderResponseInvalid
}
