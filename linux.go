package appicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// linuxSizes holds the icon dimensions generated for the Linux desktop.
var linuxSizes = []int{64, 128, 256, 512}

// defaultLinuxSize is the dimension used for the icons without a size suffix.
const defaultLinuxSize = 256

// generateLinux generates the Linux desktop icons in both the flat and the
// freedesktop hicolor layout, together with the desktop entry file.
func (g *Generator) generateLinux() error {
	iconsDir := filepath.Join(g.linuxDir, "icons")
	if err := os.MkdirAll(iconsDir, 0755); err != nil {
		return fmt.Errorf("unable to create the icons directory: %w", err)
	}

	for _, size := range linuxSizes {
		out := filepath.Join(iconsDir, fmt.Sprintf("%s-%d.png", g.Name, size))
		if err := g.Rasterizer.Rasterize(g.Source, size, out); err != nil {
			return err
		}

		// Duplicate under the flatpak naming convention.
		flatpak := filepath.Join(iconsDir, fmt.Sprintf("%s-%d.png", g.AppID, size))
		if err := copyFile(out, flatpak); err != nil {
			return err
		}

		// The freedesktop hicolor theme layout.
		hicolor := filepath.Join(iconsDir, "hicolor", fmt.Sprintf("%dx%d", size, size), "apps")
		if err := os.MkdirAll(hicolor, 0755); err != nil {
			return fmt.Errorf("unable to create the hicolor directory: %w", err)
		}
		if err := copyFile(out, filepath.Join(hicolor, g.AppID+".png")); err != nil {
			return err
		}
	}

	// Default icons without a size suffix.
	def := filepath.Join(iconsDir, fmt.Sprintf("%s-%d.png", g.Name, defaultLinuxSize))
	for _, name := range []string{g.Name + ".png", g.AppID + ".png"} {
		if err := copyFile(def, filepath.Join(iconsDir, name)); err != nil {
			return err
		}
	}

	// Ship the vector source under both names.
	for _, name := range []string{g.Name + ".svg", g.AppID + ".svg"} {
		if err := copyFile(g.Source, filepath.Join(iconsDir, name)); err != nil {
			return err
		}
	}

	return g.writeDesktopEntry()
}

// writeDesktopEntry writes the freedesktop desktop entry of the application.
func (g *Generator) writeDesktopEntry() error {
	if err := os.MkdirAll(g.linuxDir, 0755); err != nil {
		return fmt.Errorf("unable to create the output directory: %w", err)
	}

	categories := g.Categories
	if categories != "" && !strings.HasSuffix(categories, ";") {
		categories += ";"
	}

	entry := fmt.Sprintf(`[Desktop Entry]
Version=1.0
Type=Application
Name=%s
Comment=%s
Exec=%s
Icon=%s
Terminal=false
Categories=%s
StartupWMClass=%s
`, capitalize(g.Name), g.Comment, g.Exec, g.AppID, categories, capitalize(g.Name))

	dst := filepath.Join(g.linuxDir, g.Name+".desktop")
	if err := os.WriteFile(dst, []byte(entry), 0644); err != nil {
		return fmt.Errorf("unable to write the desktop entry: %v", err)
	}

	return nil
}

// capitalize upper-cases the first letter of the application name.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
