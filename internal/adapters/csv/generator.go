package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hailam/doccraft/internal/adapters/filler"
	"github.com/hailam/doccraft/internal/ports"
)

type CsvGenerator struct{}

func New() ports.FileGenerator {
	return &CsvGenerator{}
}

// Generate writes the three-row filler table as comma separated values with
// LF line endings.
func (g *CsvGenerator) Generate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(filler.Table()); err != nil {
		return fmt.Errorf("failed to write csv rows to %s: %w", path, err)
	}

	// Ensure file is synced to disk
	return f.Sync()
}
