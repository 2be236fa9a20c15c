package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var defaultCorpus []byte

// LoadCorpus reads documents from path, or the built-in corpus when path is empty.
func LoadCorpus(path string) ([]Document, error) {
	data := defaultCorpus
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read corpus %s: %w", path, err)
		}
		data = b
	}
	return ParseCorpus(data)
}

// ParseCorpus decodes a YAML corpus and checks every document.
func ParseCorpus(data []byte) ([]Document, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if len(c.Documents) == 0 {
		return nil, ErrEmptyCorpus
	}

	seen := make(map[string]bool, len(c.Documents))
	for i, d := range c.Documents {
		if strings.TrimSpace(d.ID) == "" || strings.TrimSpace(d.Text) == "" {
			return nil, fmt.Errorf("document %d: %w", i, ErrInvalidDocument)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate document id %q", d.ID)
		}
		seen[d.ID] = true
	}
	return c.Documents, nil
}
