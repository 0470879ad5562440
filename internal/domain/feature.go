package domain

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// A planned feature area shown as a tile on the landing page.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

//go:embed features.yml
var featureCatalogue []byte

type featureDocument struct {
	Features []Feature `yaml:"features"`
}

// ParseFeatures decodes a feature catalogue document. Every entry needs a title.
func ParseFeatures(doc []byte) ([]Feature, error) {
	var decoded featureDocument
	if err := yaml.Unmarshal(doc, &decoded); err != nil {
		return nil, fmt.Errorf("parse features: decode yaml: %w", err)
	}

	if len(decoded.Features) == 0 {
		return nil, errors.New("parse features: catalogue is empty")
	}

	for i, f := range decoded.Features {
		if strings.TrimSpace(f.Title) == "" {
			return nil, fmt.Errorf("parse features: entry %d has no title", i+1)
		}
	}

	return decoded.Features, nil
}

// DefaultFeatures returns the built-in catalogue.
func DefaultFeatures() []Feature {
	features, err := ParseFeatures(featureCatalogue)
	if err != nil {
		panic(err)
	}
	return features
}
