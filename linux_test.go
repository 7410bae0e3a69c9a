package appicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLinux_Icons(t *testing.T) {
	g := newTestGenerator(t)

	if err := g.generateLinux(); err != nil {
		t.Fatalf("could not generate the Linux icons: %v", err)
	}

	iconsDir := filepath.Join(g.linuxDir, "icons")
	for _, size := range linuxSizes {
		for _, name := range []string{
			fmt.Sprintf("%s-%d.png", g.Name, size),
			fmt.Sprintf("%s-%d.png", g.AppID, size),
			filepath.Join("hicolor", fmt.Sprintf("%dx%d", size, size), "apps", g.AppID+".png"),
		} {
			path := filepath.Join(iconsDir, name)
			img, err := decodeImg(path)
			if err != nil {
				t.Fatalf("could not decode %s: %v", path, err)
			}
			if dx := img.Bounds().Dx(); dx != size {
				t.Errorf("%s expected to be %v wide. Got %v", name, size, dx)
			}
		}
	}
}

func TestLinux_DefaultIcons(t *testing.T) {
	g := newTestGenerator(t)

	if err := g.generateLinux(); err != nil {
		t.Fatalf("could not generate the Linux icons: %v", err)
	}

	iconsDir := filepath.Join(g.linuxDir, "icons")
	for _, name := range []string{g.Name + ".png", g.AppID + ".png"} {
		img, err := decodeImg(filepath.Join(iconsDir, name))
		if err != nil {
			t.Fatalf("could not decode %s: %v", name, err)
		}
		if dx := img.Bounds().Dx(); dx != defaultLinuxSize {
			t.Errorf("%s expected to be %v wide. Got %v", name, defaultLinuxSize, dx)
		}
	}

	for _, name := range []string{g.Name + ".svg", g.AppID + ".svg"} {
		if _, err := os.Stat(filepath.Join(iconsDir, name)); err != nil {
			t.Errorf("The vector source expected to be shipped as %s", name)
		}
	}
}

func TestLinux_DesktopEntry(t *testing.T) {
	g := newTestGenerator(t)

	if err := g.writeDesktopEntry(); err != nil {
		t.Fatalf("could not write the desktop entry: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(g.linuxDir, g.Name+".desktop"))
	if err != nil {
		t.Fatalf("could not read the desktop entry: %v", err)
	}

	content := string(data)
	for _, line := range []string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=Sample",
		"Comment=Sample application",
		"Exec=sample",
		"Icon=com.esimov.sample",
		"Terminal=false",
		"Categories=Graphics;",
		"StartupWMClass=Sample",
	} {
		if !strings.Contains(content, line) {
			t.Errorf("The desktop entry expected to contain %q, got:\n%s", line, content)
		}
	}
}

func TestLinux_Capitalize(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"sample", "Sample"},
		{"Sample", "Sample"},
		{"ének", "Ének"},
		{"", ""},
	}

	for _, tc := range tests {
		if res := capitalize(tc.name); res != tc.expected {
			t.Errorf("%q expected to be capitalized as %q. Got %q", tc.name, tc.expected, res)
		}
	}
}
