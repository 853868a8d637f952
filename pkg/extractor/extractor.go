package extractor

import (
	"context"
	"errors"

	"github.com/ordemia/ordemia/pkg/provider"
)

type Provider interface {
	Extract(ctx context.Context, input File, options *ExtractOptions) (*Document, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
)

type File = provider.File

type ExtractOptions struct {
}

type Document struct {
	Text string

	Pages int
}
