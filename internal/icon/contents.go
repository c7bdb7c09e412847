package icon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// WriteContents rewrites the iconset's asset catalog manifest so it
// lists exactly the files in the table. An existing manifest keeps any
// keys outside "images" (notably a customized "info" block).
func WriteContents(path string) error {
	contents := map[string]interface{}{}
	if data, err := os.ReadFile(path); err == nil {
		json.Unmarshal(data, &contents)
	}

	images := make([]map[string]string, 0, len(Sizes))
	for _, spec := range Sizes {
		size, scale := pointAndScale(spec.Filename)
		images = append(images, map[string]string{
			"filename": spec.Filename,
			"idiom":    "mac",
			"scale":    scale,
			"size":     size,
		})
	}
	contents["images"] = images

	if _, ok := contents["info"]; !ok {
		contents["info"] = map[string]interface{}{
			"author":  "xcode",
			"version": 1,
		}
	}

	data, err := json.MarshalIndent(contents, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// pointAndScale derives the catalog size and scale strings from a
// variant filename: "icon_256@2x.png" is 256pt at 2x.
func pointAndScale(filename string) (size, scale string) {
	name := strings.TrimSuffix(filename, ".png")
	name = strings.TrimPrefix(name, "icon_")

	pts := name
	scale = "1x"
	if i := strings.Index(name, "@"); i >= 0 {
		pts = name[:i]
		scale = name[i+1:]
	}
	return fmt.Sprintf("%sx%s", pts, pts), scale
}
