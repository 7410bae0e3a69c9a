package appicon

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/esimov/appicon/utils"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer identifies the SVG to PNG converter used to render the vector source.
type Rasterizer string

// The supported rasterizers in the order of preference.
const (
	RsvgConvert Rasterizer = "rsvg-convert"
	Inkscape    Rasterizer = "inkscape"
	Magick      Rasterizer = "magick"
	Embedded    Rasterizer = "embedded"
)

// rasterizers holds the probe command of each external converter.
var rasterizers = []struct {
	name  Rasterizer
	probe []string
}{
	{RsvgConvert, []string{"rsvg-convert", "--version"}},
	{Inkscape, []string{"inkscape", "--version"}},
	{Magick, []string{"magick", "-version"}},
}

// DetectRasterizer probes the external SVG converters in the order of
// preference and returns the first available one. It falls back to the
// embedded renderer in case none of them is installed.
func DetectRasterizer() Rasterizer {
	for _, r := range rasterizers {
		cmd := exec.Command(r.probe[0], r.probe[1:]...)
		if err := cmd.Run(); err == nil {
			return r.name
		}
	}
	return Embedded
}

// IsValid checks if the rasterizer is a supported one.
func (r Rasterizer) IsValid() bool {
	switch r {
	case RsvgConvert, Inkscape, Magick, Embedded:
		return true
	}
	return false
}

// Rasterize converts the SVG file to a PNG image of the provided
// square dimension and saves it to the output path.
func (r Rasterizer) Rasterize(svgPath string, size int, outPath string) error {
	if err := validateSVG(svgPath); err != nil {
		return err
	}

	if r == Embedded {
		img, err := r.renderEmbedded(svgPath, size)
		if err != nil {
			return err
		}
		return encodePNG(img, outPath)
	}

	args := buildArgs(r, svgPath, outPath, size)
	if args == nil {
		return fmt.Errorf("unsupported rasterizer: %s", r)
	}

	var stderr bytes.Buffer
	cmd := exec.Command(string(r), args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed converting %s: %v\n%s",
			r, svgPath, err, stderr.String())
	}
	if stderr.Len() > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", stderr.String())
	}

	return nil
}

// buildArgs constructs the converter-specific argument list. Each external
// tool expects its own flag layout, so a change here alters the rendered
// output in subtle ways. It returns nil for an unsupported rasterizer.
func buildArgs(r Rasterizer, svgPath, outPath string, size int) []string {
	s := strconv.Itoa(size)

	switch r {
	case RsvgConvert:
		return []string{
			"-a", // keep aspect ratio
			"-w", s,
			"-h", s,
			svgPath,
			"-o", outPath,
		}
	case Inkscape:
		return []string{
			svgPath,
			"--export-type=png",
			"--export-filename=" + outPath,
			"--export-width=" + s,
			"--export-height=" + s,
		}
	case Magick:
		return []string{
			"-density", "300",
			"-background", "none",
			svgPath,
			"-resize", s + "x" + s,
			outPath,
		}
	}

	return nil
}

// RasterizeImage converts the SVG file and returns the decoded raster
// image instead of writing it to a file.
func (r Rasterizer) RasterizeImage(svgPath string, size int) (image.Image, error) {
	if r == Embedded {
		if err := validateSVG(svgPath); err != nil {
			return nil, err
		}
		return r.renderEmbedded(svgPath, size)
	}

	tmp, err := os.CreateTemp("", "raster-*.png")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := r.Rasterize(svgPath, size, tmp.Name()); err != nil {
		return nil, err
	}

	return decodeImg(tmp.Name())
}

// renderEmbedded rasterizes the SVG file in-process. It scales the vector
// drawing to fit into a square canvas of the provided dimension,
// preserving the aspect ratio of the original view box.
func (r Rasterizer) renderEmbedded(svgPath string, size int) (image.Image, error) {
	file, err := os.Open(svgPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %v", err)
	}
	defer file.Close()

	svg, err := oksvg.ReadIconStream(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the SVG file: %v", err)
	}

	w, h := float64(size), float64(size)
	if svg.ViewBox.W > 0 && svg.ViewBox.H > 0 {
		scale := utils.Min(w/svg.ViewBox.W, h/svg.ViewBox.H)
		nw, nh := svg.ViewBox.W*scale, svg.ViewBox.H*scale
		svg.SetTarget((w-nw)/2, (h-nh)/2, nw, nh)
	} else {
		svg.SetTarget(0, 0, w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	svg.Draw(raster, 1.0)

	return img, nil
}

// validateSVG performs a shallow sanity check over the vector source content.
func validateSVG(svgPath string) error {
	data, err := os.ReadFile(svgPath)
	if err != nil {
		return fmt.Errorf("unable to read the SVG file: %v", err)
	}

	content := strings.TrimSpace(string(data))
	if !strings.HasPrefix(content, "<?xml") && !strings.HasPrefix(content, "<svg") {
		return fmt.Errorf("invalid SVG content in %s", svgPath)
	}

	return nil
}
