package appicon

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <rect x="20" y="20" width="60" height="60" fill="#2196F3"/>
</svg>`

// newTestGenerator returns a generator initialized against a sample vector
// source, rendering with the embedded rasterizer into a temporary directory.
func newTestGenerator(t *testing.T) *Generator {
	t.Helper()

	dir := t.TempDir()
	svg := filepath.Join(dir, "icon.svg")
	if err := os.WriteFile(svg, []byte(sampleSVG), 0644); err != nil {
		t.Fatalf("could not write the test SVG file: %v", err)
	}

	g := &Generator{
		Source:     svg,
		OutDir:     filepath.Join(dir, "project"),
		Name:       "sample",
		AppID:      "com.esimov.sample",
		Background: "#336699",
		Comment:    "Sample application",
		Exec:       "sample",
		Categories: "Graphics",
		Platforms:  []string{PlatformAndroid, PlatformLinux, PlatformDarwin},
		Rasterizer: Embedded,
	}
	if err := g.setup(); err != nil {
		t.Fatalf("could not initialize the generator: %v", err)
	}
	t.Cleanup(g.cleanup)

	return g
}

func TestGenerator_SetupDefaults(t *testing.T) {
	g := newTestGenerator(t)

	if g.Foreground != g.Source {
		t.Errorf("The foreground source expected to default to the main source")
	}
	if g.bgColor.R != 0x33 || g.bgColor.G != 0x66 || g.bgColor.B != 0x99 {
		t.Errorf("Background color parsed incorrectly, got: %v", g.bgColor)
	}
	if _, err := os.Stat(g.tempDir); err != nil {
		t.Errorf("The temporary directory should have been created")
	}
}

func TestGenerator_SetupIsIdempotent(t *testing.T) {
	g := newTestGenerator(t)
	tempDir := g.tempDir

	if err := g.setup(); err != nil {
		t.Fatalf("could not re-initialize the generator: %v", err)
	}
	if g.tempDir != tempDir {
		t.Errorf("A repeated setup should keep the existing temporary directory")
	}
}

func TestGenerator_SetupMissingSource(t *testing.T) {
	g := &Generator{
		Source: filepath.Join(t.TempDir(), "missing.svg"),
		Name:   "sample",
	}
	if err := g.setup(); err == nil {
		t.Errorf("A missing source file should have been reported")
	}
}

func TestGenerator_SetupMissingName(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "icon.svg")
	if err := os.WriteFile(svg, []byte(sampleSVG), 0644); err != nil {
		t.Fatalf("could not write the test SVG file: %v", err)
	}

	g := &Generator{Source: svg}
	if err := g.setup(); err == nil {
		t.Errorf("An empty application name should have been reported")
	}
}

func TestGenerator_SetupInvalidColor(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "icon.svg")
	if err := os.WriteFile(svg, []byte(sampleSVG), 0644); err != nil {
		t.Fatalf("could not write the test SVG file: %v", err)
	}

	g := &Generator{
		Source:     svg,
		Name:       "sample",
		Background: "#nope",
		Rasterizer: Embedded,
	}
	if err := g.setup(); err == nil {
		t.Errorf("An invalid background color should have been reported")
	}
}

func TestGenerator_RunUnsupportedPlatform(t *testing.T) {
	g := newTestGenerator(t)
	g.Platforms = []string{"windows"}

	if err := g.Run(); err == nil {
		t.Errorf("An unsupported platform should have been reported")
	}
}

func TestGenerator_Cleanup(t *testing.T) {
	g := newTestGenerator(t)
	tempDir := g.tempDir

	g.cleanup()
	if _, err := os.Stat(tempDir); err == nil {
		t.Errorf("The temporary directory should have been removed")
	}
}
