package pdf

import (
	"fmt"

	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hailam/doccraft/internal/adapters/filler"
	"github.com/hailam/doccraft/internal/ports"
)

const (
	fontFamily = "goregular"
	fontSize   = 12
	margin     = 40.0
)

func New() ports.FileGenerator {
	return &PDFGenerator{}
}

// PDFGenerator implements FileGenerator to create a single-page PDF holding
// the filler text.
type PDFGenerator struct{}

// Generate lays the filler text out in a 12pt multi-line cell on one A4 page.
func (g *PDFGenerator) Generate(outPath string) error {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	// The Go fonts ship inside the module, so no TTF file is needed on disk.
	if err := pdf.AddTTFFontData(fontFamily, goregular.TTF); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	if err := pdf.SetFont(fontFamily, "", fontSize); err != nil {
		return fmt.Errorf("failed to set font: %w", err)
	}

	pdf.SetX(margin)
	pdf.SetY(margin)
	rect := &gopdf.Rect{W: gopdf.PageSizeA4.W - 2*margin, H: gopdf.PageSizeA4.H - 2*margin}
	if err := pdf.MultiCell(rect, filler.Text); err != nil {
		return fmt.Errorf("failed to lay out text: %w", err)
	}

	if err := pdf.WritePdf(outPath); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", outPath, err)
	}
	return nil
}
