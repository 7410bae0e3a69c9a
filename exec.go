package appicon

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esimov/appicon/utils"
	"golang.org/x/term"
)

// Execute executes the icon generation pipeline with a progress indicator
// attached. The vector sources may be local files or URLs, in which case
// they are downloaded into temporary files first.
func (g *Generator) Execute() {
	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ APPICON", utils.StatusMessage),
		utils.DecorateText("⇢ generating the icon assets...", utils.DefaultMessage),
	)
	// The cursor is hidden only when the progress indicator
	// is rendered on a real terminal.
	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	g.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, isTerm)

	// Check if the source paths are local vector files or URLs.
	g.Source = g.fetchSource(g.Source)
	if g.Foreground != "" {
		g.Foreground = g.fetchSource(g.Foreground)
	}

	// Capture CTRL-C signal and restore back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		g.Spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()
	g.Spinner.Start()

	err := g.Run()
	if err != nil {
		g.Spinner.StopMsg = fmt.Sprintf("%s %s %s",
			utils.DecorateText("⚡ APPICON", utils.StatusMessage),
			utils.DecorateText("icon generation failed...", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
		g.Spinner.Stop()

		log.Fatalf(
			utils.DecorateText("\nError generating the icon assets: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}

	g.Spinner.StopMsg = fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ APPICON", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the icon assets have been generated successfully ✔", utils.SuccessMessage),
	)
	g.Spinner.Stop()

	fmt.Fprintf(os.Stderr, "\nRasterizer: %s\n",
		utils.DecorateText(string(g.Rasterizer), utils.SuccessMessage))
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// fetchSource downloads the vector source in case it's a URL and returns
// the local file path, otherwise it returns the path unchanged.
func (g *Generator) fetchSource(src string) string {
	if !utils.IsValidUrl(src) {
		return src
	}

	file, err := utils.DownloadFile(src)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the source vector file: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	return file.Name()
}
