package config

import (
	"os"
	"path/filepath"
)

const (
	// SourceIconName is the highest-resolution variant in the iconset.
	// It doubles as the batch's input and is regenerated last.
	SourceIconName = "icon_512@2x.png"

	ContentsName = "Contents.json"
	ICNSName     = "AppIcon.icns"
)

// Project Structure:
// Root/
//  ├── scripts/ (this tool lives in a direct child of the root)
//  └── Hearsay/
//       └── Resources/
//            ├── AppIcon.icns
//            └── Assets.xcassets/AppIcon.appiconset/ (the iconset)

// ProjectRoot returns the parent of the directory holding the running
// executable.
func ProjectRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

func ResourcesDir(root string) string {
	return filepath.Join(root, "Hearsay", "Resources")
}

func IconsetDir(root string) string {
	return filepath.Join(ResourcesDir(root), "Assets.xcassets", "AppIcon.appiconset")
}

func SourceIcon(root string) string {
	return filepath.Join(IconsetDir(root), SourceIconName)
}
