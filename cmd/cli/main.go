package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/hailam/doccraft/internal/adapters/factory"
	"github.com/hailam/doccraft/internal/allocator"
	"github.com/hailam/doccraft/internal/application"
	"github.com/hailam/doccraft/internal/config"
	"github.com/hailam/doccraft/internal/logger"
	"github.com/hailam/doccraft/internal/ports"
	"github.com/hailam/doccraft/internal/scatter"
	"github.com/hailam/doccraft/internal/vocabulary"
)

// options holds flag values
type options struct {
	number    int
	folder    string
	mix       string
	spread    bool
	seed      uint64
	namesFile string
	logLevel  string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg, os.Stdout, os.Stderr).Execute(); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	generatorFactory := factory.NewStaticGeneratorFactory()

	rootCmd := &cobra.Command{
		Use:   "doccraft",
		Short: "Generates a batch of placeholder documents and optionally scatters them.",
		Long: fmt.Sprintf(`doccraft is a CLI tool to populate a folder with placeholder documents
(%s) named from a list of corporate-sounding names. With --spread the files
are then moved into randomly chosen subdirectories of the folder, which is
useful for exercising backup, search or sync tools.`, joinTypes(generatorFactory.Types())),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cfg, generatorFactory, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Define flags
	rootCmd.Flags().IntVarP(&opts.number, "number", "n", 0, "Number of files to generate (required)")
	rootCmd.Flags().StringVarP(&opts.folder, "folder", "f", "", "Root path of the destination folder, created if absent (required)")
	rootCmd.Flags().StringVarP(&opts.mix, "mix", "m", strings.Join(cfg.Mix, ","), "Comma separated list of formats to generate")
	rootCmd.Flags().BoolVarP(&opts.spread, "spread", "s", false, "Move the generated files into random subdirectories of the folder")
	rootCmd.Flags().Uint64Var(&opts.seed, "seed", cfg.Seed, "Seed for reproducible runs (0 picks a random seed)")
	rootCmd.Flags().StringVar(&opts.namesFile, "names", cfg.NamesFile, "File with one base name per line, replacing the built-in list")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	_ = rootCmd.MarkFlagRequired("number")
	_ = rootCmd.MarkFlagRequired("folder")

	return rootCmd
}

func run(opts *options, cfg config.Config, generatorFactory ports.GeneratorFactory, stdout, stderr io.Writer) error {
	if opts.number <= 0 {
		return fmt.Errorf("--number must be a positive integer, got %d", opts.number)
	}
	formats := application.ParseFormats(opts.mix)
	if len(formats) == 0 {
		return fmt.Errorf("--mix lists no formats")
	}

	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	log := logger.New(logger.WithOutput(stdout), logger.WithLevel(level), logger.WithFormat(format), logger.WithoutTime())

	vocab := vocabulary.Default()
	if opts.namesFile != "" {
		if vocab, err = vocabulary.Load(opts.namesFile); err != nil {
			return err
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug("starting batch", slog.Uint64("seed", seed))
	rng := rand.New(rand.NewPCG(seed, seed))

	// --- Composition Root: Initialize Adapters and Core Logic ---
	fileService := application.NewFileService(
		generatorFactory,
		allocator.New(vocab, rng),
		scatter.New(rng, scatter.WithLogger(log)),
		log,
	)
	// --- End Composition Root ---

	// Ensure the folder exists
	if err := os.MkdirAll(opts.folder, 0o755); err != nil {
		return fmt.Errorf("cannot create folder %s: %w", opts.folder, err)
	}

	s := newSpinner(stderr, opts.number)
	s.Start()

	// --- Execute Core Logic ---
	report, err := fileService.Generate(application.GenerationRequest{
		Count:       opts.number,
		Formats:     formats,
		Destination: opts.folder,
		Spread:      opts.spread,
	})
	s.Stop()
	if err != nil {
		return err
	}
	// --- End Execute Core Logic ---

	fmt.Fprintf(stdout, "%d files generated in %s with formats: %s\n", len(report.Written), opts.folder, joinTypes(formats))
	if report.NothingToSpread {
		fmt.Fprintln(stdout, "No subdirectories found to spread files into.")
	}
	return nil
}

// newSpinner returns a progress spinner on stderr. It stays silent unless
// stderr is a terminal.
func newSpinner(stderr io.Writer, count int) *spinner.Spinner {
	suffix := spinner.WithSuffix(fmt.Sprintf(" generating %d files", count))
	f, ok := stderr.(*os.File)
	if !ok {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, suffix, spinner.WithWriter(stderr))
		s.Disable()
		return s
	}
	return spinner.New(spinner.CharSets[14], 100*time.Millisecond, suffix, spinner.WithWriterFile(f))
}

func joinTypes(types []ports.FileType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
