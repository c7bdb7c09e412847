package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"hearsay-tools/internal/config"
	"hearsay-tools/internal/icon"
	"hearsay-tools/internal/ui"
)

type options struct {
	root     string
	native   bool
	filter   string
	round    bool
	icns     bool
	contents bool
}

func main() {
	var opts options
	flag.StringVar(&opts.root, "root", "", "project root (default: parent of this executable's directory)")
	flag.BoolVar(&opts.native, "native", false, "resize in-process instead of invoking magick")
	flag.StringVar(&opts.filter, "filter", string(icon.FilterCatmullRom), "native resampling filter: catmullrom or lanczos")
	flag.BoolVar(&opts.round, "round", false, "clip corners to the macOS rounded rectangle (implies -native)")
	flag.BoolVar(&opts.icns, "icns", false, "also write Hearsay/Resources/AppIcon.icns")
	flag.BoolVar(&opts.contents, "contents", false, "also rewrite the iconset's Contents.json")
	flag.Parse()

	if err := run(opts); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func run(opts options) error {
	root := opts.root
	if root == "" {
		r, err := config.ProjectRoot()
		if err != nil {
			return fmt.Errorf("resolve project root: %v", err)
		}
		root = r
	}

	iconDir := config.IconsetDir(root)
	src := config.SourceIcon(root)

	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("source icon not found at %s", src)
	}

	var engine icon.Engine = &icon.MagickEngine{}
	if opts.native || opts.round {
		f := icon.Filter(opts.filter)
		if f != icon.FilterCatmullRom && f != icon.FilterLanczos {
			return fmt.Errorf("unknown filter %q", opts.filter)
		}
		engine = &icon.NativeEngine{Filter: f, Round: opts.round}
	}

	gen := &icon.Generator{Engine: engine}
	if err := gen.Run(src, iconDir); err != nil {
		return err
	}

	if opts.contents {
		path := filepath.Join(iconDir, config.ContentsName)
		if err := icon.WriteContents(path); err != nil {
			return fmt.Errorf("write %s: %v", config.ContentsName, err)
		}
		ui.Success("Updated " + path)
	}

	if opts.icns {
		out := filepath.Join(config.ResourcesDir(root), config.ICNSName)
		if err := icon.WriteICNS(src, out); err != nil {
			return fmt.Errorf("write %s: %v", config.ICNSName, err)
		}
		ui.Success("Wrote " + out)
	}

	return nil
}
