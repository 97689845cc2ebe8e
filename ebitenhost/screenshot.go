package ebitenhost

import (
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

// screenshotter captures labeled frames. Labels queue up from Update (script
// steps, hotkeys) and are written at the end of the next Draw.
type screenshotter struct {
	dir   string
	queue []string
	log   *zap.Logger
}

// Queue adds a label to capture. Matches colorific.ScreenshotFunc.
func (s *screenshotter) Queue(label string) {
	s.queue = append(s.queue, label)
}

// flush captures the rendered frame for every queued label and writes each
// as a PNG file.
func (s *screenshotter) flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Warn("screenshot mkdir failed", zap.String("dir", s.dir), zap.Error(err))
		return
	}

	img := readNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.queue {
		path := filepath.Join(s.dir, shotName(stamp, label))
		if err := savePNG(path, img); err != nil {
			s.log.Warn("screenshot failed", zap.String("label", label), zap.Error(err))
			continue
		}
		s.log.Info("screenshot", zap.String("path", path))
	}
}

// readNRGBA reads the premultiplied framebuffer back as straight-alpha NRGBA.
func readNRGBA(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	unpremultiply(img.Pix, pixels)
	return img
}

func unpremultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}

// savePNG writes img to path. Speed matters more than size for captures
// taken inside a frame.
func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// shotName returns the file name for a capture taken at stamp. Label runes
// outside [A-Za-z0-9.-] become underscores; a blank label becomes "shot".
func shotName(stamp, label string) string {
	label = strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, strings.TrimSpace(label))
	if label == "" {
		label = "shot"
	}
	return stamp + "_" + label + ".png"
}
