package icon

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes an opaque single-color PNG and returns its path.
func writeTestPNG(t *testing.T, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 40, 40, 255})
		}
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestNativeDimensions(t *testing.T) {
	src := writeTestPNG(t, "icon_512@2x.png", 64, 64)
	dir := t.TempDir()

	e := &NativeEngine{}
	for _, spec := range []IconSpec{
		{Size: 16, Filename: "icon_16.png"},
		{Size: 512, Filename: "icon_512.png"},
	} {
		out := filepath.Join(dir, spec.Filename)
		if err := e.Generate(src, out, spec); err != nil {
			t.Fatalf("Generate %s: %v", spec.Filename, err)
		}
		b := decodePNG(t, out).Bounds()
		if b.Dx() != spec.Size || b.Dy() != spec.Size {
			t.Errorf("%s = %dx%d, want %dx%d", spec.Filename, b.Dx(), b.Dy(), spec.Size, spec.Size)
		}
	}
}

func TestNativePadding(t *testing.T) {
	src := writeTestPNG(t, "src.png", 64, 64)
	out := filepath.Join(t.TempDir(), "out.png")

	// Size 40 gives a 32px content box with a 4px transparent border.
	e := &NativeEngine{}
	if err := e.Generate(src, out, IconSpec{Size: 40, Filename: "out.png"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	img := decodePNG(t, out)
	if a := alphaAt(img, 1, 1); a != 0 {
		t.Errorf("border alpha = %d, want 0", a)
	}
	if a := alphaAt(img, 20, 20); a == 0 {
		t.Error("center is transparent, want opaque content")
	}
}

func TestNativeRound(t *testing.T) {
	src := writeTestPNG(t, "src.png", 64, 64)
	dir := t.TempDir()

	// Size 100: content box 80, border 10, corner radius 22. The point
	// (10,10) sits inside the content box but outside the corner arc,
	// so it is opaque unclipped and transparent clipped.
	spec := IconSpec{Size: 100, Filename: "out.png"}

	square := filepath.Join(dir, "square.png")
	if err := (&NativeEngine{}).Generate(src, square, spec); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a := alphaAt(decodePNG(t, square), 10, 10); a == 0 {
		t.Fatal("unclipped content corner is transparent")
	}

	rounded := filepath.Join(dir, "rounded.png")
	if err := (&NativeEngine{Round: true}).Generate(src, rounded, spec); err != nil {
		t.Fatalf("Generate round: %v", err)
	}
	img := decodePNG(t, rounded)
	if a := alphaAt(img, 10, 10); a != 0 {
		t.Errorf("clipped corner alpha = %d, want 0", a)
	}
	if a := alphaAt(img, 50, 50); a == 0 {
		t.Error("clipped center is transparent, want opaque")
	}
}

func TestNativeLanczos(t *testing.T) {
	src := writeTestPNG(t, "src.png", 64, 64)
	out := filepath.Join(t.TempDir(), "out.png")

	e := &NativeEngine{Filter: FilterLanczos}
	if err := e.Generate(src, out, IconSpec{Size: 32, Filename: "out.png"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b := decodePNG(t, out).Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("output = %dx%d, want 32x32", b.Dx(), b.Dy())
	}
}

func TestNativeNonSquareSource(t *testing.T) {
	src := writeTestPNG(t, "src.png", 100, 50)
	out := filepath.Join(t.TempDir(), "out.png")

	// Content box 51; a 2:1 source fits as 51x25, centered vertically.
	e := &NativeEngine{}
	if err := e.Generate(src, out, IconSpec{Size: 64, Filename: "out.png"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	img := decodePNG(t, out)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("output = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
	if a := alphaAt(img, 32, 32); a == 0 {
		t.Error("center is transparent, want opaque content")
	}
	if a := alphaAt(img, 32, 5); a != 0 {
		t.Errorf("top padding alpha = %d, want 0", a)
	}
}

func TestNativeMissingSource(t *testing.T) {
	e := &NativeEngine{}
	err := e.Generate(filepath.Join(t.TempDir(), "missing.png"), "out.png", IconSpec{Size: 16})
	if err == nil {
		t.Fatal("Generate succeeded, want error")
	}
}
