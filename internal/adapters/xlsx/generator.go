package xlsx

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/hailam/doccraft/internal/adapters/filler"
	"github.com/hailam/doccraft/internal/ports"
)

const sheetName = "Sheet1"

type XlsxGenerator struct{}

// New returns the spreadsheet generator. It serves both the xlsx and the xls
// tags: the workbook is always OOXML, whatever the file extension.
func New() ports.FileGenerator {
	return &XlsxGenerator{}
}

// Generate writes a one-sheet workbook with a header row and one value row.
// The workbook is streamed through Write rather than SaveAs so the legacy
// .xls extension is accepted.
func (g *XlsxGenerator) Generate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range filler.Sheet() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to fill row %d: %w", i+1, err)
		}
	}

	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer outFile.Close()

	if err := f.Write(outFile); err != nil {
		return fmt.Errorf("failed to write workbook to %s: %w", path, err)
	}
	return outFile.Close()
}
