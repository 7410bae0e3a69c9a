package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/esimov/appicon"
	"github.com/esimov/appicon/utils"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┬┌─┐┌─┐┌┐┌
├─┤├─┘├─┘││  │ ││││
┴ ┴┴  ┴  ┴└─┘└─┘┘└┘

App icon asset generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source     = flag.String("svg", "", "Source SVG file or URL")
	foreground = flag.String("fg", "", "Foreground SVG file used for the notification and adaptive layers")
	outDir     = flag.String("out", ".", "Project root the assets are generated into")
	name       = flag.String("name", "", "Application name")
	appID      = flag.String("id", "", "Application identifier in reverse-DNS notation")
	background = flag.String("bg", "#FFFFFF", "Background color in hexadecimal format")
	comment    = flag.String("comment", "", "Desktop entry comment")
	execName   = flag.String("exec", "", "Desktop entry executable name")
	categories = flag.String("categories", "", "Desktop entry categories, separated by semicolons")
	platforms  = flag.String("platforms", "android,linux,darwin", "Comma separated list of target platforms")
	rasterizer = flag.String("rasterizer", "", "SVG rasterizer (rsvg-convert, inkscape, magick, embedded)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*source) == 0 {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide the source SVG file!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}
	if len(*name) == 0 {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide the application name!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	var targets []string
	for _, p := range strings.Split(*platforms, ",") {
		if p = strings.TrimSpace(p); p != "" {
			targets = append(targets, p)
		}
	}

	gen := &appicon.Generator{
		Source:     *source,
		Foreground: *foreground,
		OutDir:     *outDir,
		Name:       *name,
		AppID:      *appID,
		Background: *background,
		Comment:    *comment,
		Exec:       *execName,
		Categories: *categories,
		Platforms:  targets,
		Rasterizer: appicon.Rasterizer(*rasterizer),
	}

	gen.Execute()
}
