package drop

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Screenshot asks for the next drawn frame to be saved as
// <debug.screenshot_dir>/<timestamp>_<label>.png.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots saves screen once per pending label. Errors are only
// logged; pending labels are dropped either way.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	dir := g.cfg.Debug.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		g.log.Warn("screenshot dir", zap.String("dir", dir), zap.Error(err))
		return
	}

	img := framePixels(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			g.log.Warn("screenshot", zap.Error(err))
			continue
		}
		g.log.Info("screenshot saved", zap.String("path", path))
	}
}

// framePixels copies screen into CPU memory. Ebitengine hands back
// premultiplied RGBA, which is exactly image.RGBA's layout.
func framePixels(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, screen.Bounds().Dx(), screen.Bounds().Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps letters, digits, '-' and '.' and turns everything else
// into '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
