// Package scatter spreads the files in a directory across its subdirectories.
package scatter

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/hailam/doccraft/internal/fsx"
	"github.com/hailam/doccraft/internal/ports"
)

// ErrNoSubdirectories is returned when root has nothing to scatter into.
var ErrNoSubdirectories = ports.ErrNoSubdirectories

type Option func(*Scatterer)

func WithLogger(l *slog.Logger) Option {
	return func(s *Scatterer) {
		if l != nil {
			s.log = l
		}
	}
}

// Scatterer moves every regular file directly inside a root directory into a
// uniformly chosen descendant directory.
type Scatterer struct {
	rng *rand.Rand
	log *slog.Logger
}

func New(rng *rand.Rand, opts ...Option) *Scatterer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Scatterer{rng: rng, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scatter relocates the top-level files of root. Targets are drawn with
// replacement, so one directory may receive several files and another none.
// Name clashes in the target are resolved with fsx.FreeName; nothing is
// overwritten.
func (s *Scatterer) Scatter(root string) ([]ports.Move, error) {
	root = filepath.Clean(root)

	dirs, err := subdirectories(root)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		s.log.Info("nothing to scatter", slog.String("root", root))
		return nil, ErrNoSubdirectories
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var moves []ports.Move
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		src := filepath.Join(root, e.Name())
		target := dirs[s.rng.IntN(len(dirs))]

		dst, err := fsx.MoveNoOverwrite(src, target)
		if err != nil {
			return moves, fmt.Errorf("move %s to %s: %w", e.Name(), target, err)
		}
		s.log.Info("moved file", slog.String("file", e.Name()), slog.String("to", target))
		if filepath.Base(dst) != e.Name() {
			s.log.Warn("renamed to avoid overwriting",
				slog.String("file", e.Name()), slog.String("as", filepath.Base(dst)))
		}
		moves = append(moves, ports.Move{Name: e.Name(), From: src, To: dst})
	}
	return moves, nil
}

// subdirectories lists every directory below root at any depth, root excluded.
func subdirectories(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return dirs, nil
}
