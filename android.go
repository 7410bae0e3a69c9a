package appicon

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/esimov/appicon/imop"
)

// masterSize is the working resolution the vector sources are rasterized at
// before being scaled down to the individual density buckets.
const masterSize = 1024

// density associates an Android resource directory with the icon
// dimension expected inside it.
type density struct {
	dir  string
	size int
}

var (
	// The adaptive icon layers are laid out on a 108dp canvas.
	adaptiveDensities = []density{
		{"mipmap-mdpi", 108},
		{"mipmap-hdpi", 162},
		{"mipmap-xhdpi", 216},
		{"mipmap-xxhdpi", 324},
		{"mipmap-xxxhdpi", 432},
	}

	// The legacy launcher icons used below API level 26.
	legacyDensities = []density{
		{"mipmap-mdpi", 48},
		{"mipmap-hdpi", 72},
		{"mipmap-xhdpi", 96},
		{"mipmap-xxhdpi", 144},
		{"mipmap-xxxhdpi", 192},
	}

	// The status bar notification icons.
	notificationDensities = []density{
		{"drawable-mdpi", 24},
		{"drawable-hdpi", 36},
		{"drawable-xhdpi", 48},
		{"drawable-xxhdpi", 72},
		{"drawable-xxxhdpi", 96},
	}
)

// generateAndroid generates the adaptive icon layers, the legacy launcher
// icons, the notification icons and the derived resource files.
func (g *Generator) generateAndroid() error {
	fg, err := g.Rasterizer.RasterizeImage(g.Foreground, masterSize)
	if err != nil {
		return err
	}
	fgTrimmed := imop.Trim(imgToNRGBA(fg), 0)

	src, err := g.Rasterizer.RasterizeImage(g.Source, masterSize)
	if err != nil {
		return err
	}
	srcTrimmed := imop.Trim(imgToNRGBA(src), 0)

	for _, d := range adaptiveDensities {
		dir := filepath.Join(g.androidRes, d.dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create the resource directory: %w", err)
		}

		layer := imop.FitCenter(fgTrimmed, d.size, safeZoneRatio)
		if err := encodePNG(layer, filepath.Join(dir, "ic_launcher_foreground.png")); err != nil {
			return err
		}
		if err := encodePNG(imop.Whiteout(layer), filepath.Join(dir, "ic_launcher_monochrome.png")); err != nil {
			return err
		}
		if err := encodePNG(imop.Fill(d.size, g.bgColor), filepath.Join(dir, "ic_launcher_background.png")); err != nil {
			return err
		}
	}

	for _, d := range legacyDensities {
		dir := filepath.Join(g.androidRes, d.dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create the resource directory: %w", err)
		}

		icon := imop.FitCenter(srcTrimmed, d.size, 0.8)
		backdrop := imop.RoundedRect(d.size, float64(d.size)*0.15, g.bgColor)
		bmp := imop.Over(nil, icon, backdrop)

		if err := encodePNG(bmp.Img, filepath.Join(dir, "ic_launcher.png")); err != nil {
			return err
		}
	}

	// The notification icons are rendered straight from the foreground
	// vector source, which is already white and centered.
	for _, d := range notificationDensities {
		dir := filepath.Join(g.androidRes, d.dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create the resource directory: %w", err)
		}

		out := filepath.Join(dir, "ic_notification.png")
		if err := g.Rasterizer.Rasterize(g.Foreground, d.size, out); err != nil {
			return err
		}
	}

	if err := g.writeColorsXML(); err != nil {
		return err
	}

	return g.writeAdaptiveIconXML()
}

// colorResources models the Android values/colors.xml resource file.
type colorResources struct {
	XMLName xml.Name        `xml:"resources"`
	Colors  []colorResource `xml:"color"`
}

type colorResource struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// writeColorsXML writes the background color resource consumed by the
// adaptive icon background layer.
func (g *Generator) writeColorsXML() error {
	dir := filepath.Join(g.androidRes, "values")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create the resource directory: %w", err)
	}

	res := colorResources{
		Colors: []colorResource{
			{Name: "ic_launcher_background", Value: g.Background},
		},
	}

	return writeXML(filepath.Join(dir, "colors.xml"), res)
}

// adaptiveIcon models the mipmap-anydpi-v26 adaptive icon resource.
type adaptiveIcon struct {
	XMLName    xml.Name      `xml:"adaptive-icon"`
	Xmlns      string        `xml:"xmlns:android,attr"`
	Background adaptiveLayer `xml:"background"`
	Foreground adaptiveLayer `xml:"foreground"`
	Monochrome adaptiveLayer `xml:"monochrome"`
}

type adaptiveLayer struct {
	Drawable string `xml:"android:drawable,attr"`
}

// writeAdaptiveIconXML writes the adaptive icon descriptors referencing the
// generated foreground, background and monochrome layers.
func (g *Generator) writeAdaptiveIconXML() error {
	dir := filepath.Join(g.androidRes, "mipmap-anydpi-v26")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create the resource directory: %w", err)
	}

	icon := adaptiveIcon{
		Xmlns:      "http://schemas.android.com/apk/res/android",
		Background: adaptiveLayer{Drawable: "@color/ic_launcher_background"},
		Foreground: adaptiveLayer{Drawable: "@mipmap/ic_launcher_foreground"},
		Monochrome: adaptiveLayer{Drawable: "@mipmap/ic_launcher_monochrome"},
	}

	for _, name := range []string{"ic_launcher.xml", "ic_launcher_round.xml"} {
		if err := writeXML(filepath.Join(dir, name), icon); err != nil {
			return err
		}
	}

	return nil
}

// writeXML marshals the value into an indented XML file with the standard header.
func writeXML(dst string, v any) error {
	data, err := xml.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("could not encode the XML resource: %v", err)
	}

	content := append([]byte(xml.Header), data...)
	content = append(content, '\n')

	if err := os.WriteFile(dst, content, 0644); err != nil {
		return fmt.Errorf("unable to write the XML resource: %v", err)
	}

	return nil
}
