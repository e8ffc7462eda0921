package txt

import (
	"fmt"
	"os"

	"github.com/hailam/doccraft/internal/adapters/filler"
	"github.com/hailam/doccraft/internal/ports"
)

type TxtGenerator struct{}

func New() ports.FileGenerator {
	return &TxtGenerator{}
}

func (g *TxtGenerator) Generate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(filler.Text); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Sync()
}
