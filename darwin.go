package appicon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/jackmordaunt/icns/v3"
	"golang.org/x/image/draw"
)

// iconsetVariants maps the Apple iconset file names to their pixel dimensions.
var iconsetVariants = []struct {
	name string
	size int
}{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
	{"icon_512x512@2x.png", 1024},
}

// generateDarwin generates the macOS AppIcon.iconset tree and the
// AppIcon.icns archive out of a single 1024px master rendering.
func (g *Generator) generateDarwin() error {
	master, err := g.Rasterizer.RasterizeImage(g.Source, masterSize)
	if err != nil {
		return err
	}

	iconset := filepath.Join(g.darwinDir, "AppIcon.iconset")
	if err := os.MkdirAll(iconset, 0755); err != nil {
		return fmt.Errorf("unable to create the iconset directory: %w", err)
	}

	for _, v := range iconsetVariants {
		icon := scaleImage(master, v.size)
		if err := encodePNG(icon, filepath.Join(iconset, v.name)); err != nil {
			return err
		}
	}

	file, err := os.Create(filepath.Join(g.darwinDir, "AppIcon.icns"))
	if err != nil {
		return fmt.Errorf("unable to create the icns file: %v", err)
	}
	defer file.Close()

	if err := icns.Encode(file, master); err != nil {
		return fmt.Errorf("could not encode the icns file: %v", err)
	}

	return nil
}

// scaleImage resizes the image to a square of the provided dimension
// using Catmull-Rom interpolation.
func scaleImage(src image.Image, size int) *image.NRGBA {
	if b := src.Bounds(); b.Dx() == size && b.Dy() == size {
		return imgToNRGBA(src)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return dst
}
