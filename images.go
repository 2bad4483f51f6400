package devfolio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	thumbWidth   = 480
	thumbQuality = 80
	thumbsSubdir = "thumbs"
)

// GenerateThumbnails writes a card-sized JPEG for every entry cover image
// found under the static dir. Missing covers are logged and skipped; an
// unwritable output directory fails.
func GenerateThumbnails(staticDir string, entries []ContentEntry) error {
	outDir := filepath.Join(staticDir, thumbsSubdir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, e := range entries {
		if e.Cover == "" || !strings.HasPrefix(e.Cover, "/public/") {
			continue
		}
		src := filepath.Join(staticDir, strings.TrimPrefix(e.Cover, "/public/"))
		dst := filepath.Join(outDir, e.Slug+".jpg")
		if fresh(dst, src) {
			continue
		}
		if err := thumbnailFile(src, dst); err != nil {
			log.Printf("devfolio: thumbnail %s: %v", src, err)
		}
	}
	return nil
}

// fresh reports whether dst exists and is at least as new as src.
func fresh(dst, src string) bool {
	di, err := os.Stat(dst)
	if err != nil {
		return false
	}
	si, err := os.Stat(src)
	if err != nil {
		return false
	}
	return !di.ModTime().Before(si.ModTime())
}

func thumbnailFile(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := resizeCover(f)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// resizeCover decodes an image, scales it down to the card width if wider,
// and encodes it as JPEG.
func resizeCover(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > thumbWidth {
		newH := h * thumbWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
