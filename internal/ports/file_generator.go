package ports

// FileGenerator is the port for anything that can render the fixed
// placeholder content of one format into a file.
type FileGenerator interface {
	// Generate writes a complete file at outPath, replacing any existing one.
	Generate(outPath string) error
}
