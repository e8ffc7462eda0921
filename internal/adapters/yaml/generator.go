package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hailam/doccraft/internal/adapters/filler"
	"github.com/hailam/doccraft/internal/ports"
)

type YamlGenerator struct{}

func New() ports.FileGenerator {
	return &YamlGenerator{}
}

// Generate writes the filler record as a YAML mapping.
func (g *YamlGenerator) Generate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(filler.Record()); err != nil {
		return fmt.Errorf("failed to encode yaml to %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush yaml to %s: %w", path, err)
	}
	return f.Sync()
}
