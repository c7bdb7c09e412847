package icon

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Engine produces one icon variant from the source image.
type Engine interface {
	Generate(src, out string, spec IconSpec) error
}

// Generator drives the iconset batch: one engine call per table entry,
// in table order, stopping at the first failure. A mid-batch failure
// leaves earlier files written and later ones absent.
type Generator struct {
	Engine Engine
	Out    io.Writer // console output; defaults to os.Stdout
}

func (g *Generator) writer() io.Writer {
	if g.Out != nil {
		return g.Out
	}
	return os.Stdout
}

// Run generates every variant in the table into iconDir from src.
func (g *Generator) Run(src, iconDir string) error {
	w := g.writer()

	fmt.Fprintf(w, "Using source: %s\n", src)
	fmt.Fprintln(w, "Generating rounded icons...")

	for _, spec := range Sizes {
		out := filepath.Join(iconDir, spec.Filename)
		if err := g.Engine.Generate(src, out, spec); err != nil {
			return err
		}
		fmt.Fprintf(w, "  Created %s (%dx%d)\n", out, spec.Size, spec.Size)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done! Icons now have macOS-style rounded corners.")
	fmt.Fprintln(w, "Run ./run.sh to rebuild the app.")
	return nil
}
