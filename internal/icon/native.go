package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Filter selects the resampling kernel for the native engine.
type Filter string

const (
	FilterCatmullRom Filter = "catmullrom"
	FilterLanczos    Filter = "lanczos"
)

// NativeEngine produces variants in-process instead of invoking
// ImageMagick. The source image is decoded once and reused for every
// variant in the batch.
type NativeEngine struct {
	Filter Filter
	Round  bool

	src     image.Image
	srcPath string
}

func (e *NativeEngine) Generate(src, out string, spec IconSpec) error {
	if e.src == nil || e.srcPath != src {
		img, err := imaging.Open(src)
		if err != nil {
			return fmt.Errorf("open source: %v", err)
		}
		e.src, e.srcPath = img, src
	}

	content := e.scale(spec.ContentSize())

	// Transparent canvas with the content centered: the same geometry
	// magick computes for -background none -gravity center -extent.
	canvas := image.NewRGBA(image.Rect(0, 0, spec.Size, spec.Size))
	cw, ch := content.Bounds().Dx(), content.Bounds().Dy()
	x0 := (spec.Size - cw) / 2
	y0 := (spec.Size - ch) / 2
	xdraw.Draw(canvas, image.Rect(x0, y0, x0+cw, y0+ch), content, content.Bounds().Min, xdraw.Over)

	var result image.Image = canvas
	if e.Round {
		result = roundCorners(canvas, spec.CornerRadius())
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, result)
}

func (e *NativeEngine) scale(box int) image.Image {
	w, h := fit(e.src.Bounds(), box)
	if e.Filter == FilterLanczos {
		return resize.Resize(uint(w), uint(h), e.src, resize.Lanczos3)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Rect, e.src, e.src.Bounds(), xdraw.Over, nil)
	return dst
}

// fit returns the largest dimensions with the source's aspect ratio
// that fit inside a box x box square, matching magick's -resize WxH.
func fit(b image.Rectangle, box int) (int, int) {
	sw, sh := b.Dx(), b.Dy()
	if sw >= sh {
		h := sh * box / sw
		if h < 1 {
			h = 1
		}
		return box, h
	}
	w := sw * box / sh
	if w < 1 {
		w = 1
	}
	return w, box
}

// roundCorners clips the canvas to a rounded rectangle of the given
// corner radius.
func roundCorners(img image.Image, radius int) image.Image {
	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.DrawRoundedRectangle(0, 0, float64(b.Dx()), float64(b.Dy()), float64(radius))
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}
