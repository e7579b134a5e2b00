// Package catalog loads card sets from YAML.
package catalog

import (
	"context"
	"embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/randomtoy/coresim/internal/domain"
)

//go:embed data/*.yaml
var catalogFS embed.FS

// DefaultID names the catalog served when none is configured.
const DefaultID = "nemesis"

// registry maps catalog IDs to their YAML filenames inside data/.
var registry = map[string]string{
	DefaultID: "data/nemesis.yaml",
}

// EmbeddedStore serves catalogs compiled into the binary.
type EmbeddedStore struct {
	once     sync.Once
	catalogs map[string][]domain.CardSpec
	err      error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.catalogs = make(map[string][]domain.CardSpec, len(registry))
	for id, filename := range registry {
		raw, err := catalogFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded catalog %s: %w", id, err)
			return
		}
		cards, err := Parse(raw)
		if err != nil {
			s.err = fmt.Errorf("parse embedded catalog %s: %w", id, err)
			return
		}
		s.catalogs[id] = cards
	}
}

// GetCatalog returns a copy of the catalog so callers may edit counts.
func (s *EmbeddedStore) GetCatalog(_ context.Context, catalogID string) ([]domain.CardSpec, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	cards, ok := s.catalogs[catalogID]
	if !ok {
		return nil, domain.ErrCatalogNotFound
	}
	return slices.Clone(cards), nil
}

// Parse decodes a YAML list of card specs and checks their bounds.
func Parse(raw []byte) ([]domain.CardSpec, error) {
	var cards []domain.CardSpec
	if err := yaml.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := domain.ValidateSpecs(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// LoadFile reads a deck file in the same format as the embedded catalogs.
func LoadFile(path string) ([]domain.CardSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	cards, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("deck file %s: %w", path, err)
	}
	return cards, nil
}
