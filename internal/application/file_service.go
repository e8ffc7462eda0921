package application

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hailam/doccraft/internal/ports"
)

// GenerationRequest describes one batch run.
type GenerationRequest struct {
	Count       int
	Formats     []ports.FileType
	Destination string
	Spread      bool // scatter the batch into Destination's subdirectories afterwards
}

// Report summarises what a batch run did.
type Report struct {
	Written         []string
	Skipped         []ports.Allocation // allocations whose format has no generator
	Moves           []ports.Move
	NothingToSpread bool
}

// FileService orchestrates a batch: it allocates names, selects the correct
// generator for each file, invokes it, and optionally scatters the result.
type FileService struct {
	factory   ports.GeneratorFactory
	allocator ports.NameAllocator
	spreader  ports.Spreader
	log       *slog.Logger
}

// NewFileService constructs a FileService. A nil logger discards output.
func NewFileService(factory ports.GeneratorFactory, allocator ports.NameAllocator, spreader ports.Spreader, log *slog.Logger) *FileService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &FileService{factory: factory, allocator: allocator, spreader: spreader, log: log}
}

// Generate runs the batch described by req. Unsupported formats are logged
// and skipped; any generator or filesystem failure aborts the run and is
// returned together with the partial report.
func (s *FileService) Generate(req GenerationRequest) (*Report, error) {
	// 1. Pick unique names up front so invalid requests write nothing
	allocs, err := s.allocator.Allocate(req.Count, req.Formats)
	if err != nil {
		return nil, fmt.Errorf("cannot allocate %d file names: %w", req.Count, err)
	}

	report := &Report{}
	for _, a := range allocs {
		// 2. Retrieve the generator for this type
		generator, err := s.factory.For(a.Format)
		if err != nil {
			s.log.Warn("unsupported file format", slog.String("format", string(a.Format)), slog.String("file", a.FileName()))
			report.Skipped = append(report.Skipped, a)
			continue
		}

		// 3. Invoke the generator
		outPath := filepath.Join(req.Destination, a.FileName())
		if err := generator.Generate(outPath); err != nil {
			return report, fmt.Errorf("failed to generate %s: %w", outPath, err)
		}
		s.log.Debug("generated file", slog.String("path", outPath))
		report.Written = append(report.Written, outPath)
	}
	s.log.Info("batch complete",
		slog.Int("written", len(report.Written)),
		slog.Int("skipped", len(report.Skipped)),
		slog.String("folder", req.Destination))

	if !req.Spread {
		return report, nil
	}

	// 4. Scatter into the existing tree
	moves, err := s.spreader.Scatter(req.Destination)
	report.Moves = moves
	if errors.Is(err, ports.ErrNoSubdirectories) {
		report.NothingToSpread = true
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("failed to spread files in %s: %w", req.Destination, err)
	}
	return report, nil
}

// ParseFormats turns a comma separated mix such as "txt, PDF,docx" into a
// format set: entries are trimmed and lowercased, empty entries dropped and
// duplicates removed keeping the first occurrence. Unknown tags are kept; the
// generator lookup rejects them later.
func ParseFormats(mix string) []ports.FileType {
	parts := strings.Split(mix, ",")
	seen := make(map[ports.FileType]bool, len(parts))
	var out []ports.FileType
	for _, raw := range parts {
		t := ports.FileType(strings.ToLower(strings.TrimSpace(raw)))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
