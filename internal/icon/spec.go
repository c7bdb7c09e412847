package icon

// IconSpec is one row of the iconset table: the pixel size of the
// output square and the file it is written to. ScaleTag mirrors the
// asset catalog's scale column; nothing reads it.
type IconSpec struct {
	Size     int
	Filename string
	ScaleTag int
}

// Sizes is the fixed macOS AppIcon.appiconset table. The last entry
// regenerates the source file itself at its own resolution.
var Sizes = []IconSpec{
	{16, "icon_16.png", 1},
	{32, "icon_16@2x.png", 1}, // 16@2x = 32px
	{32, "icon_32.png", 1},
	{64, "icon_32@2x.png", 1}, // 32@2x = 64px
	{128, "icon_128.png", 1},
	{256, "icon_128@2x.png", 1}, // 128@2x = 256px
	{256, "icon_256.png", 1},
	{512, "icon_256@2x.png", 1}, // 256@2x = 512px
	{512, "icon_512.png", 1},
	{1024, "icon_512@2x.png", 1}, // 512@2x = 1024px
}

// ContentSize is the edge of the box the artwork is resized into.
// Icon content occupies 80% of the canvas (10% padding on each side).
func (s IconSpec) ContentSize() int {
	return int(float64(s.Size) * 0.8)
}

// CornerRadius is the Big Sur rounded-corner radius, ~22.37% of the
// icon edge.
func (s IconSpec) CornerRadius() int {
	return int(float64(s.Size) * 0.2237)
}
