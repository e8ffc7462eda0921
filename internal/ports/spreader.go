package ports

import "errors"

// ErrNoSubdirectories is returned by a Spreader when root has nothing to
// scatter into. It is informational: no file has been touched.
var ErrNoSubdirectories = errors.New("no subdirectories found to spread files into")

// Move records one file relocated out of a root directory.
type Move struct {
	Name string // original file name
	From string
	To   string
}

// Spreader relocates the files sitting directly in root into its subdirectories.
type Spreader interface {
	Scatter(root string) ([]Move, error)
}
