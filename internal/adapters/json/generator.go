package json

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/hailam/doccraft/internal/adapters/filler"
	"github.com/hailam/doccraft/internal/ports"
)

type JsonGenerator struct{}

func New() ports.FileGenerator {
	return &JsonGenerator{}
}

// Generate writes the filler record as a JSON object indented by four spaces.
func (g *JsonGenerator) Generate(path string) error {
	data, err := json.MarshalIndent(filler.Record(), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
