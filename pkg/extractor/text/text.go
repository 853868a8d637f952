package text

import (
	"context"
	"path"
	"slices"
	"strings"
	"unicode"

	"github.com/ordemia/ordemia/pkg/extractor"
	"github.com/ordemia/ordemia/pkg/provider"
)

var _ extractor.Provider = &Extractor{}

var SupportedExtensions = []string{
	".txt",
	".csv",
	".md",
}

var SupportedMimeTypes = []string{
	"text/plain",
	"text/csv",
	"text/markdown",
}

type Extractor struct {
}

func New() (*Extractor, error) {
	return &Extractor{}, nil
}

func (e *Extractor) Extract(ctx context.Context, input extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !detectText(input) {
		return nil, extractor.ErrUnsupported
	}

	return &extractor.Document{
		Text:  string(input.Content),
		Pages: 1,
	}, nil
}

func detectText(input provider.File) bool {
	if isSupported(input) {
		return true
	}

	var printableCount int

	for _, b := range input.Content {
		if b == 0 {
			return false
		}

		if unicode.IsPrint(rune(b)) || b == '\n' || b == '\r' || b == '\t' {
			printableCount++
		}
	}

	return printableCount > (len(input.Content) * 90 / 100)
}

func isSupported(file provider.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		if slices.Contains(SupportedMimeTypes, file.ContentType) {
			return true
		}
	}

	return false
}
