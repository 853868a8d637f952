package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type configFile struct {
	Address string `yaml:"address"`

	MaxFiles    int   `yaml:"max_files"`
	MaxFileSize int64 `yaml:"max_file_size_mb"`

	Concurrency int `yaml:"concurrency"`
	Timeout     int `yaml:"timeout_seconds"`

	SessionTTL int `yaml:"session_ttl_seconds"`

	Limit *int `yaml:"limit"`

	Tesseract tesseractConfig `yaml:"tesseract"`
}

type tesseractConfig struct {
	Binary   string `yaml:"binary"`
	Language string `yaml:"language"`
}

func parseFile(path string) (*configFile, error) {
	if path == "" {
		return &configFile{}, nil
	}

	data, err := os.ReadFile(path)

	if errors.Is(err, fs.ErrNotExist) {
		return &configFile{}, nil
	}

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var file configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil {
		return nil, err
	}

	return &file, nil
}
