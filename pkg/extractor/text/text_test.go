package text

import (
	"errors"
	"testing"

	"github.com/ordemia/ordemia/pkg/extractor"
)

func TestExtract(t *testing.T) {
	e, err := New()

	if err != nil {
		t.Fatal(err)
	}

	input := extractor.File{
		Name:        "pedido.txt",
		ContentType: "text/plain",
		Content:     []byte("Caneta esferográfica azul"),
	}

	doc, err := e.Extract(t.Context(), input, nil)

	if err != nil {
		t.Fatal(err)
	}

	if doc.Text != "Caneta esferográfica azul" {
		t.Errorf("unexpected text: %q", doc.Text)
	}
}

func TestExtractDetection(t *testing.T) {
	e, _ := New()

	input := extractor.File{
		Name:    "unknown",
		Content: []byte("plain content without hints"),
	}

	if _, err := e.Extract(t.Context(), input, nil); err != nil {
		t.Errorf("printable content should be accepted: %v", err)
	}

	binary := extractor.File{
		Name:    "image.raw",
		Content: []byte{0x00, 0xff, 0x10, 0x80},
	}

	if _, err := e.Extract(t.Context(), binary, nil); !errors.Is(err, extractor.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
