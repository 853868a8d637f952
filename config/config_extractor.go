package config

import (
	"github.com/ordemia/ordemia/pkg/extractor"
	"github.com/ordemia/ordemia/pkg/extractor/multi"
	"github.com/ordemia/ordemia/pkg/extractor/pdf"
	"github.com/ordemia/ordemia/pkg/extractor/tesseract"
	"github.com/ordemia/ordemia/pkg/extractor/text"
	"github.com/ordemia/ordemia/pkg/limiter"
)

func (cfg *Config) registerExtractors(f *configFile) error {
	var providers []extractor.Provider

	pdfExtractor, err := pdf.New()

	if err != nil {
		return err
	}

	providers = append(providers, pdfExtractor)

	var options []tesseract.Option

	if f.Tesseract.Binary != "" {
		options = append(options, tesseract.WithBinary(f.Tesseract.Binary))
	}

	if f.Tesseract.Language != "" {
		options = append(options, tesseract.WithLanguage(f.Tesseract.Language))
	}

	ocrExtractor, err := tesseract.New(options...)

	if err != nil {
		return err
	}

	providers = append(providers, ocrExtractor)

	// the text passthrough claims anything mostly printable, keep it last
	textExtractor, err := text.New()

	if err != nil {
		return err
	}

	providers = append(providers, textExtractor)

	var chain extractor.Provider = multi.New(providers...)

	if cfg.limiter != nil {
		chain = limiter.NewExtractor(cfg.limiter, chain)
	}

	cfg.Extractor = chain

	return nil
}
