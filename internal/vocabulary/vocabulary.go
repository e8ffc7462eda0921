// Package vocabulary holds the candidate base names generated files are
// named from.
package vocabulary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrEmpty         = errors.New("vocabulary is empty")
	ErrDuplicateName = errors.New("duplicate name in vocabulary")
	ErrInvalidName   = errors.New("invalid name in vocabulary")
)

// Vocabulary is an immutable ordered list of distinct base names.
type Vocabulary struct {
	names []string
}

// New validates names and returns a Vocabulary holding a private copy of them.
// Names must be non-empty, unique, free of path separators and must not start
// with a dot.
func New(names []string) (*Vocabulary, error) {
	if len(names) == 0 {
		return nil, ErrEmpty
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for i, n := range names {
		if err := validate(n); err != nil {
			return nil, fmt.Errorf("entry %d %q: %w", i, n, err)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("entry %d %q: %w", i, n, ErrDuplicateName)
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return &Vocabulary{names: out}, nil
}

// Load reads a vocabulary from a file with one name per line. Blank lines and
// lines starting with '#' are ignored.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary %s: %w", path, err)
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	v, err := New(names)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return v, nil
}

// Default returns the built-in corporate-sounding vocabulary.
func Default() *Vocabulary {
	v, err := New(defaultNames)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Vocabulary) Len() int { return len(v.names) }

// Names returns a copy of the names in their original order.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

func validate(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return ErrInvalidName
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: contains a path separator", ErrInvalidName)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: starts with a dot", ErrInvalidName)
	}
	return nil
}
