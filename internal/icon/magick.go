package icon

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// MagickEngine shells out to ImageMagick once per variant. Each
// invocation blocks until the subprocess exits; there is no timeout.
type MagickEngine struct {
	// Binary overrides the executable name, mainly for tests.
	Binary string
}

const defaultMagickBinary = "magick"

func (e *MagickEngine) binary() string {
	if e.Binary != "" {
		return e.Binary
	}
	return defaultMagickBinary
}

// Args builds the positional argument vector: resize the source into
// the 80% content box, transparent background, center, extend the
// canvas to the full size, write the output.
func (e *MagickEngine) Args(src, out string, spec IconSpec) []string {
	c := spec.ContentSize()
	return []string{
		src,
		"-resize", fmt.Sprintf("%dx%d", c, c),
		"-background", "none",
		"-gravity", "center",
		"-extent", fmt.Sprintf("%dx%d", spec.Size, spec.Size),
		out,
	}
}

// Generate runs one magick invocation. A non-zero exit or a missing
// binary comes back as an error carrying the tool's stderr.
func (e *MagickEngine) Generate(src, out string, spec IconSpec) error {
	cmd := exec.Command(e.binary(), e.Args(src, out, spec)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s %s: %v: %s", e.binary(), spec.Filename, err, msg)
		}
		return fmt.Errorf("%s %s: %v", e.binary(), spec.Filename, err)
	}
	return nil
}
