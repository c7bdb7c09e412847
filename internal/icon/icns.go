package icon

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/jackmordaunt/icns/v3"
)

// WriteICNS encodes the source image into a multi-resolution .icns
// file, the compiled form of the iconset that Finder and the Dock read
// directly.
func WriteICNS(src, out string) error {
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %v", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := icns.Encode(f, img); err != nil {
		return fmt.Errorf("encode icns: %v", err)
	}
	return nil
}
