package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilePath is where the bootstrap configuration is looked up
const DefaultFilePath = "configs/default.yaml"

// File is the optional bootstrap configuration read once at startup.
// Empty fields leave the stored preference untouched.
type File struct {
	Catalog struct {
		Endpoint string `yaml:"endpoint"`
	} `yaml:"catalog"`
	Trailer struct {
		URLTemplate string `yaml:"urlTemplate"`
	} `yaml:"trailer"`
	UI struct {
		Language string `yaml:"language"`
	} `yaml:"ui"`
}

// LoadFile reads a bootstrap file. A missing file is not an error and yields
// an empty File.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	return DecodeFile(f)
}

// DecodeFile parses a bootstrap configuration from r
func DecodeFile(r io.Reader) (*File, error) {
	var cfg File
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Apply seeds the settings with the non-empty file values. Preferences that
// were already stored, e.g. from the settings dialog, win over the file.
func (f *File) Apply(s *Settings) {
	if f.Catalog.Endpoint != "" && !s.isStored(KeyCatalogEndpoint) {
		s.SetCatalogEndpoint(f.Catalog.Endpoint)
	}
	if f.Trailer.URLTemplate != "" && !s.isStored(KeyTrailerTemplate) {
		s.SetTrailerTemplate(f.Trailer.URLTemplate)
	}
	if f.UI.Language != "" && !s.isStored(KeyLanguage) {
		s.SetLanguage(f.UI.Language)
	}
}
