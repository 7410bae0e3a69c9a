package appicon

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/esimov/appicon/utils"
)

// The target platforms an icon set can be generated for.
const (
	PlatformAndroid = "android"
	PlatformLinux   = "linux"
	PlatformDarwin  = "darwin"
)

// safeZoneRatio expresses how much of the adaptive icon canvas the
// foreground content may occupy. Android reserves the outer area of the
// 108dp canvas for the launcher masks and parallax effects.
const safeZoneRatio = 66.0 / 108.0

// Generator options
type Generator struct {
	Source     string
	Foreground string
	OutDir     string
	Name       string
	AppID      string
	Background string
	Comment    string
	Exec       string
	Categories string
	Platforms  []string
	Rasterizer Rasterizer
	Spinner    *utils.Spinner

	androidRes string
	linuxDir   string
	darwinDir  string
	tempDir    string
	bgColor    color.NRGBA
}

// Run executes the icon generation pipeline: it selects the rasterizer,
// generates the raster assets of each requested platform together with the
// derived config fragments, then runs a best-effort verification pass
// which reports the missing artifacts without failing the run.
func (g *Generator) Run() error {
	if err := g.setup(); err != nil {
		return err
	}
	defer g.cleanup()

	for _, platform := range g.Platforms {
		switch platform {
		case PlatformAndroid:
			if err := g.generateAndroid(); err != nil {
				return err
			}
		case PlatformLinux:
			if err := g.generateLinux(); err != nil {
				return err
			}
		case PlatformDarwin:
			if err := g.generateDarwin(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported platform: %s", platform)
		}
	}

	g.Verify()

	return nil
}

// setup validates the generator options and creates the necessary directories.
func (g *Generator) setup() error {
	if _, err := os.Stat(g.Source); err != nil {
		return fmt.Errorf("source SVG file not found: %s", g.Source)
	}
	if g.Foreground == "" {
		g.Foreground = g.Source
	}
	if _, err := os.Stat(g.Foreground); err != nil {
		return fmt.Errorf("foreground SVG file not found: %s", g.Foreground)
	}

	if g.Name == "" {
		return fmt.Errorf("the application name should not be empty")
	}
	if g.AppID == "" {
		g.AppID = g.Name
	}
	if g.Exec == "" {
		g.Exec = g.Name
	}
	if len(g.Platforms) == 0 {
		g.Platforms = []string{PlatformAndroid, PlatformLinux, PlatformDarwin}
	}

	if g.Rasterizer == "" {
		g.Rasterizer = DetectRasterizer()
	}
	if !g.Rasterizer.IsValid() {
		return fmt.Errorf("unsupported rasterizer: %s", g.Rasterizer)
	}

	if g.Background == "" {
		g.Background = "#FFFFFF"
	}
	bgColor, err := utils.HexToRGBA(g.Background)
	if err != nil {
		return err
	}
	g.bgColor = bgColor

	g.androidRes = filepath.Join(g.OutDir, "android", "app", "src", "main", "res")
	g.linuxDir = filepath.Join(g.OutDir, "linux")
	g.darwinDir = filepath.Join(g.OutDir, "macos")

	// Keep the already created temporary directory on repeated runs.
	if g.tempDir == "" {
		tempDir, err := os.MkdirTemp("", "appicon")
		if err != nil {
			return fmt.Errorf("unable to create the temporary directory: %w", err)
		}
		g.tempDir = tempDir
	}

	return nil
}

// cleanup removes the temporary files.
func (g *Generator) cleanup() {
	if g.tempDir != "" {
		os.RemoveAll(g.tempDir)
		g.tempDir = ""
	}
}

// copyFile duplicates the source file at the destination path.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open the source file: %v", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %v", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("unable to copy the source file: %v", err)
	}

	return nil
}
