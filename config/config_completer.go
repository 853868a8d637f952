package config

import (
	"errors"

	"github.com/ordemia/ordemia/pkg/catalog"
	"github.com/ordemia/ordemia/pkg/limiter"
	"github.com/ordemia/ordemia/pkg/otel"
	"github.com/ordemia/ordemia/pkg/provider"
	"github.com/ordemia/ordemia/pkg/provider/anthropic"
	"github.com/ordemia/ordemia/pkg/provider/google"
	"github.com/ordemia/ordemia/pkg/provider/openai"
)

var ErrInvalidKey = errors.New("invalid api key format")

// Completer builds a client for one upload request. API keys arrive
// per request from the user, so clients are constructed on demand
// rather than registered at startup.
func (cfg *Config) Completer(providerID, model, apiKey string) (provider.Completer, error) {
	entry, err := catalog.Lookup(providerID)

	if err != nil {
		return nil, err
	}

	if !catalog.ValidateKey(providerID, apiKey) {
		return nil, ErrInvalidKey
	}

	if model == "" {
		model = entry.Default
	}

	var completer provider.Completer

	switch entry.Kind {
	case catalog.KindOpenAI:
		completer, err = openai.New(entry.BaseURL, model, openai.WithToken(apiKey))

	case catalog.KindAnthropic:
		completer, err = anthropic.New(entry.BaseURL, model, anthropic.WithToken(apiKey))

	case catalog.KindGoogle:
		completer, err = google.New(model, google.WithToken(apiKey))

	default:
		return nil, catalog.ErrUnknownProvider
	}

	if err != nil {
		return nil, err
	}

	if cfg.limiter != nil {
		completer = limiter.NewCompleter(cfg.limiter, completer)
	}

	if otel.EnableTelemetry {
		completer = otel.NewCompleter(providerID, model, completer)
	}

	return completer, nil
}
