package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                                    "",
		"cat-sprite-sheet.png":                "cat-sprite-sheet.png",
		"assets/cat-sprite-sheet.png":         "cat-sprite-sheet.png",
		"/home/me/deskcat/assets/sub/cat.png": "sub/cat.png",
		"/tmp/cat.png":                        "cat.png",
	}
	for in, want := range cases {
		if got := cleanAssetPath(in); got != want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeEmbeddedCatSheet(t *testing.T) {
	img, err := DecodeImage(CatSheet)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	b := img.Bounds()
	if b.Dx() < 247 || b.Dy() < 320 {
		t.Fatalf("cat sheet too small for an 8x10 grid: %v", b)
	}
}

func TestDecodeImagePrefersDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.png")

	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(1, 1, color.NRGBA{G: 0xff, A: 0xff})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("does-not-exist.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
	if _, err := LoadFile(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
