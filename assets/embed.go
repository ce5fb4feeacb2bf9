package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

//go:embed *.png
var assetsFS embed.FS

// CatSheet is the name of the stock cat sprite sheet.
const CatSheet = "cat-sprite-sheet.png"

// Sheet is a decoded sprite sheet. Pixels stays on the CPU for geometry
// work; Image is the GPU copy used for drawing.
type Sheet struct {
	Pixels image.Image
	Image  *ebiten.Image
}

// LoadFile reads an asset from disk if present, otherwise from the embedded set.
func LoadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	for _, p := range diskCandidates(path) {
		if b, err := os.ReadFile(p); err == nil {
			return b, nil
		}
	}
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return b, nil
}

// DecodeImage loads and decodes a PNG, BMP or WebP asset.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadSheet decodes a sprite sheet and uploads it for drawing.
func LoadSheet(path string) (*Sheet, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return &Sheet{Pixels: img, Image: ebiten.NewImageFromImage(img)}, nil
}

func diskCandidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	return []string{path, filepath.Join("assets", filepath.FromSlash(cleanAssetPath(path)))}
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
