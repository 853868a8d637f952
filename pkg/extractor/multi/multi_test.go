package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/ordemia/ordemia/pkg/extractor"
)

type stub struct {
	doc *extractor.Document
	err error
}

func (s *stub) Extract(ctx context.Context, input extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	return s.doc, s.err
}

func TestExtractChain(t *testing.T) {
	e := New(
		&stub{err: extractor.ErrUnsupported},
		&stub{doc: &extractor.Document{Text: "ok"}},
	)

	doc, err := e.Extract(t.Context(), extractor.File{Name: "a.pdf"}, nil)

	if err != nil {
		t.Fatal(err)
	}

	if doc.Text != "ok" {
		t.Errorf("unexpected text: %q", doc.Text)
	}
}

func TestExtractChainError(t *testing.T) {
	failure := errors.New("ocr failed")

	e := New(
		&stub{err: extractor.ErrUnsupported},
		&stub{err: failure},
		&stub{doc: &extractor.Document{Text: "never reached"}},
	)

	if _, err := e.Extract(t.Context(), extractor.File{}, nil); !errors.Is(err, failure) {
		t.Errorf("expected chain to stop on real error, got %v", err)
	}
}

func TestExtractChainUnsupported(t *testing.T) {
	e := New(&stub{err: extractor.ErrUnsupported})

	if _, err := e.Extract(t.Context(), extractor.File{}, nil); !errors.Is(err, extractor.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
