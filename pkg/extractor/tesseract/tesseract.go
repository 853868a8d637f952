package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path"
	"slices"
	"strings"

	"github.com/ordemia/ordemia/pkg/extractor"
)

var _ extractor.Provider = &Extractor{}

var SupportedExtensions = []string{
	".png",
	".jpg",
	".jpeg",
}

var SupportedMimeTypes = []string{
	"image/png",
	"image/jpeg",
}

type Extractor struct {
	*Config
}

func New(options ...Option) (*Extractor, error) {
	cfg := &Config{
		binary:   "tesseract",
		language: "por",
	}

	for _, option := range options {
		option(cfg)
	}

	return &Extractor{
		Config: cfg,
	}, nil
}

// Extract shells out to the tesseract binary. There is no maintained
// pure-Go OCR, and the cgo bindings tie the build to a libtesseract
// version, so the CLI is the contract here.
func (e *Extractor) Extract(ctx context.Context, input extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !isSupported(input) {
		return nil, extractor.ErrUnsupported
	}

	file, err := os.CreateTemp("", "ocr-*"+strings.ToLower(path.Ext(input.Name)))

	if err != nil {
		return nil, err
	}

	defer os.Remove(file.Name())

	if _, err := file.Write(input.Content); err != nil {
		file.Close()
		return nil, err
	}

	if err := file.Close(); err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, e.binary, file.Name(), "stdout", "-l", e.language)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return &extractor.Document{
		Text:  stdout.String(),
		Pages: 1,
	}, nil
}

func isSupported(file extractor.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	return slices.Contains(SupportedMimeTypes, file.ContentType)
}
