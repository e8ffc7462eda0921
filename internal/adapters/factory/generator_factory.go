package factory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hailam/doccraft/internal/adapters/csv"
	"github.com/hailam/doccraft/internal/adapters/docx"
	"github.com/hailam/doccraft/internal/adapters/json"
	"github.com/hailam/doccraft/internal/adapters/pdf"
	"github.com/hailam/doccraft/internal/adapters/txt"
	"github.com/hailam/doccraft/internal/adapters/xlsx"
	"github.com/hailam/doccraft/internal/adapters/yaml"
	"github.com/hailam/doccraft/internal/ports"
)

// ErrUnsupportedFormat is returned by For when no generator handles a tag.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// StaticGeneratorFactory provides concrete implementations for FileGenerators.
type StaticGeneratorFactory struct {
	generators map[ports.FileType]ports.FileGenerator
}

// NewStaticGeneratorFactory creates a new factory with pre-initialized generators.
func NewStaticGeneratorFactory() *StaticGeneratorFactory {
	sheet := xlsx.New()
	return &StaticGeneratorFactory{
		generators: map[ports.FileType]ports.FileGenerator{
			ports.FileTypeTXT:  txt.New(),
			ports.FileTypePDF:  pdf.New(),
			ports.FileTypeDOCX: docx.New(),
			ports.FileTypeCSV:  csv.New(),
			ports.FileTypeJSON: json.New(),
			ports.FileTypeXLS:  sheet, // legacy tag, OOXML content
			ports.FileTypeXLSX: sheet,
			ports.FileTypeYAML: yaml.New(),
		},
	}
}

// For returns the appropriate FileGenerator for the given FileType.
func (f *StaticGeneratorFactory) For(t ports.FileType) (ports.FileGenerator, error) {
	gen, ok := f.generators[t]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, t)
	}
	return gen, nil
}

// Types lists the supported tags in lexical order.
func (f *StaticGeneratorFactory) Types() []ports.FileType {
	out := make([]ports.FileType, 0, len(f.generators))
	for t := range f.generators {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
