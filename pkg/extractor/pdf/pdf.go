package pdf

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/ordemia/ordemia/pkg/extractor"

	"github.com/ledongthuc/pdf"
)

var _ extractor.Provider = &Extractor{}

type Extractor struct {
}

func New() (*Extractor, error) {
	return &Extractor{}, nil
}

func (e *Extractor) Extract(ctx context.Context, input extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !isSupported(input) {
		return nil, extractor.ErrUnsupported
	}

	r, err := pdf.NewReader(bytes.NewReader(input.Content), int64(len(input.Content)))

	if err != nil {
		return nil, err
	}

	var text strings.Builder
	var pages int

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)

		if p.V.IsNull() {
			continue
		}

		content, err := p.GetPlainText(nil)

		if err != nil {
			continue
		}

		text.WriteString(content)
		text.WriteString("\n")

		pages++
	}

	return &extractor.Document{
		Text:  text.String(),
		Pages: pages,
	}, nil
}

func isSupported(file extractor.File) bool {
	if file.ContentType == "application/pdf" {
		return true
	}

	if file.Name != "" && strings.EqualFold(path.Ext(file.Name), ".pdf") {
		return true
	}

	return bytes.HasPrefix(file.Content, []byte("%PDF-"))
}
