package application_test

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/doccraft/internal/adapters/factory"
	"github.com/hailam/doccraft/internal/allocator"
	"github.com/hailam/doccraft/internal/application"
	"github.com/hailam/doccraft/internal/ports"
	"github.com/hailam/doccraft/internal/scatter"
	"github.com/hailam/doccraft/internal/vocabulary"
)

func newService(t *testing.T, seed uint64, vocab *vocabulary.Vocabulary, log *slog.Logger) *application.FileService {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed))
	return application.NewFileService(
		factory.NewStaticGeneratorFactory(),
		allocator.New(vocab, rng),
		scatter.New(rng, scatter.WithLogger(log)),
		log,
	)
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func TestGenerate_TxtAndCsv(t *testing.T) {
	dest := t.TempDir()
	vocab := vocabulary.Default()
	known := make(map[string]bool)
	for _, n := range vocab.Names() {
		known[n] = true
	}

	report, err := newService(t, 5, vocab, nil).Generate(application.GenerationRequest{
		Count:       3,
		Formats:     application.ParseFormats("txt,csv"),
		Destination: dest,
	})
	require.NoError(t, err)
	require.Len(t, report.Written, 3)

	files := listFiles(t, dest)
	require.Len(t, files, 3)

	bases := make(map[string]bool)
	for _, name := range files {
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		assert.Contains(t, []string{".txt", ".csv"}, ext)
		assert.True(t, known[base], "%q is not a vocabulary entry", base)
		assert.False(t, bases[base], "%q used twice", base)
		bases[base] = true

		if ext == ".csv" {
			f, err := os.Open(filepath.Join(dest, name))
			require.NoError(t, err)
			rows, err := csv.NewReader(f).ReadAll()
			f.Close()
			require.NoError(t, err)
			require.Len(t, rows, 3)
			assert.Equal(t, []string{"Column1", "Column2", "Column3"}, rows[0])
		}
	}
}

func TestGenerate_UnsupportedOnly(t *testing.T) {
	dest := t.TempDir()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	report, err := newService(t, 1, vocabulary.Default(), log).Generate(application.GenerationRequest{
		Count:       1,
		Formats:     application.ParseFormats("xml"),
		Destination: dest,
	})
	require.NoError(t, err)
	assert.Empty(t, report.Written)
	assert.Len(t, report.Skipped, 1)
	assert.Empty(t, listFiles(t, dest))
	assert.Equal(t, 1, strings.Count(buf.String(), "unsupported file format"))
}

func TestGenerate_ExhaustionFailsFast(t *testing.T) {
	dest := t.TempDir()
	vocab, err := vocabulary.New([]string{"alpha", "beta"})
	require.NoError(t, err)

	_, err = newService(t, 1, vocab, nil).Generate(application.GenerationRequest{
		Count:       3,
		Formats:     []ports.FileType{ports.FileTypeTXT},
		Destination: dest,
	})
	require.ErrorIs(t, err, allocator.ErrNameExhausted)
	assert.Empty(t, listFiles(t, dest))
}

func TestGenerate_EveryFormat(t *testing.T) {
	dest := t.TempDir()
	all := factory.NewStaticGeneratorFactory().Types()

	report, err := newService(t, 8, vocabulary.Default(), nil).Generate(application.GenerationRequest{
		Count:       20,
		Formats:     all,
		Destination: dest,
	})
	require.NoError(t, err)
	require.Len(t, report.Written, 20)

	for _, p := range report.Written {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "%s is empty", p)
	}
}

func TestGenerate_SpreadIntoTree(t *testing.T) {
	dest := t.TempDir()
	for _, d := range []string{"finance/2024", "legal", "hr"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dest, d), 0o755))
	}

	report, err := newService(t, 3, vocabulary.Default(), nil).Generate(application.GenerationRequest{
		Count:       6,
		Formats:     []ports.FileType{ports.FileTypeTXT, ports.FileTypeJSON},
		Destination: dest,
		Spread:      true,
	})
	require.NoError(t, err)
	assert.False(t, report.NothingToSpread)
	require.Len(t, report.Moves, 6)
	assert.Empty(t, listFiles(t, dest))

	for _, m := range report.Moves {
		_, err := os.Stat(m.To)
		require.NoError(t, err)
	}
}

func TestGenerate_SpreadWithoutTree(t *testing.T) {
	dest := t.TempDir()

	report, err := newService(t, 3, vocabulary.Default(), nil).Generate(application.GenerationRequest{
		Count:       2,
		Formats:     []ports.FileType{ports.FileTypeTXT},
		Destination: dest,
		Spread:      true,
	})
	require.NoError(t, err)
	assert.True(t, report.NothingToSpread)
	assert.Len(t, listFiles(t, dest), 2)
}

func TestGenerate_SameCountsAcrossRuns(t *testing.T) {
	formats := []ports.FileType{ports.FileTypeTXT, ports.FileTypeCSV}
	run := func(seed uint64) int {
		dest := t.TempDir()
		report, err := newService(t, seed, vocabulary.Default(), nil).Generate(application.GenerationRequest{
			Count: 10, Formats: formats, Destination: dest,
		})
		require.NoError(t, err)
		return len(listFiles(t, dest)) + len(report.Skipped)
	}
	assert.Equal(t, run(1), run(2))
}
