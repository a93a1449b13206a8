package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

const (
	screenshotWidth  = 1920
	screenshotHeight = 1080
	screenshotWait   = 60 * time.Second
)

// SaveImage screenshots the rendered HTML report to a PNG via headless
// Chrome. The viewport is 1920x1080 scaled by the configured factor; the
// capture covers the full page height.
func SaveImage(ctx context.Context, htmlPath, pngPath string, scale float64) error {
	if scale <= 0 {
		scale = 1.0
	}

	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, execOpts...)
	defer cancel()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()
	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, screenshotWait)
	defer cancelTimeout()

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to resolve report path: %w", err)
	}

	var buf []byte
	if err := chromedp.Run(taskCtx,
		chromedp.EmulateViewport(screenshotWidth, screenshotHeight, chromedp.EmulateScale(scale)),
		chromedp.Navigate("file://"+abs),
		// The charts draw asynchronously; wait for the first canvas and
		// let the entry animation settle.
		chromedp.WaitVisible("canvas", chromedp.ByQuery),
		chromedp.Sleep(time.Second),
		chromedp.FullScreenshot(&buf, 100),
	); err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	if err := os.WriteFile(pngPath, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	log.Infof("Saved image to %s", pngPath)
	return nil
}
