package appicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/appicon/utils"
)

// check describes a single verification step over a generated artifact.
type check struct {
	name string
	path string
	size int // expected square dimension, 0 skips the decode check
}

// Verify runs a best-effort verification pass over the generated assets.
// Each key artifact is checked for existence and, where applicable, decoded
// and compared against the expected dimensions. The outcome is reported on
// the terminal but a failed check never fails the run. It returns the number
// of failed checks.
func (g *Generator) Verify() int {
	fmt.Fprintf(os.Stderr, "\n%s\n", utils.DecorateText("Verifying the generated icons...", utils.StatusMessage))

	var checks []check
	for _, platform := range g.Platforms {
		switch platform {
		case PlatformAndroid:
			checks = append(checks,
				check{"Foreground", filepath.Join(g.androidRes, "mipmap-hdpi", "ic_launcher_foreground.png"), 162},
				check{"Monochrome", filepath.Join(g.androidRes, "mipmap-hdpi", "ic_launcher_monochrome.png"), 162},
				check{"Launcher", filepath.Join(g.androidRes, "mipmap-hdpi", "ic_launcher.png"), 72},
				check{"Notification", filepath.Join(g.androidRes, "drawable-hdpi", "ic_notification.png"), 36},
				check{"Adaptive icon", filepath.Join(g.androidRes, "mipmap-anydpi-v26", "ic_launcher.xml"), 0},
			)
		case PlatformLinux:
			checks = append(checks,
				check{"Linux icon", filepath.Join(g.linuxDir, "icons", fmt.Sprintf("%s-%d.png", g.Name, defaultLinuxSize)), defaultLinuxSize},
				check{"Default icon", filepath.Join(g.linuxDir, "icons", g.AppID+".png"), defaultLinuxSize},
				check{"Desktop entry", filepath.Join(g.linuxDir, g.Name+".desktop"), 0},
			)
		case PlatformDarwin:
			checks = append(checks,
				check{"Iconset", filepath.Join(g.darwinDir, "AppIcon.iconset", "icon_512x512.png"), 512},
				check{"Icns archive", filepath.Join(g.darwinDir, "AppIcon.icns"), 0},
			)
		}
	}

	var failed int
	for _, c := range checks {
		if err := c.run(); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  %s: %s\n", c.name,
				utils.DecorateText(fmt.Sprintf("✘ %v", err), utils.ErrorMessage))
		} else {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", c.name,
				utils.DecorateText("✔", utils.SuccessMessage))
		}
	}

	if utils.Contains(g.Platforms, PlatformAndroid) {
		if err := g.verifyBackgroundColor(); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  Background color: %s\n",
				utils.DecorateText(fmt.Sprintf("✘ %v", err), utils.ErrorMessage))
		} else {
			fmt.Fprintf(os.Stderr, "  Background color: %s\n",
				utils.DecorateText(fmt.Sprintf("✔ %s", g.Background), utils.SuccessMessage))
		}
	}

	return failed
}

// run checks that the artifact exists and decodes to the expected dimensions.
func (c check) run() error {
	if _, err := os.Stat(c.path); err != nil {
		return fmt.Errorf("missing")
	}
	if c.size == 0 {
		return nil
	}

	img, err := decodeImg(c.path)
	if err != nil {
		return err
	}
	if dx, dy := img.Bounds().Dx(), img.Bounds().Dy(); dx != c.size || dy != c.size {
		return fmt.Errorf("expected %dx%d, got %dx%d", c.size, c.size, dx, dy)
	}

	return nil
}

// verifyBackgroundColor checks that colors.xml carries the background color resource.
func (g *Generator) verifyBackgroundColor() error {
	data, err := os.ReadFile(filepath.Join(g.androidRes, "values", "colors.xml"))
	if err != nil {
		return fmt.Errorf("missing")
	}
	if !strings.Contains(string(data), g.Background) {
		return fmt.Errorf("not set correctly")
	}

	return nil
}
