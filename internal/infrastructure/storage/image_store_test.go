package storage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nakochan/the-kokoa-engine/domain"
)

func pngImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return &buf
}

func newTestStore(t *testing.T) *LocalImageStore {
	t.Helper()

	store, err := NewLocalImageStore(t.TempDir(), 960, 100, 80)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestLocalImageStore_Save_SmallImageKeepsSize(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(pngImage(t, 320, 240))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(stored.Filename, ".jpg") {
		t.Errorf("expected jpg filename, got %s", stored.Filename)
	}
	if stored.Width != 320 || stored.Height != 240 {
		t.Errorf("expected 320x240, got %dx%d", stored.Width, stored.Height)
	}

	if _, err := os.Stat(filepath.Join(store.dir, stored.Filename)); err != nil {
		t.Errorf("expected image file on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.dir, "thumb", stored.Filename)); err != nil {
		t.Errorf("expected thumbnail file on disk: %v", err)
	}
}

func TestLocalImageStore_Save_WideImageCapped(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(pngImage(t, 1920, 1080))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored.Width != 960 {
		t.Errorf("expected width capped at 960, got %d", stored.Width)
	}
	if stored.Height != 540 {
		t.Errorf("expected aspect-preserving height 540, got %d", stored.Height)
	}
}

func TestLocalImageStore_Save_ThumbnailIsSquare(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(pngImage(t, 640, 480))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(filepath.Join(store.dir, "thumb", stored.Filename))
	if err != nil {
		t.Fatalf("failed to open thumbnail: %v", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("failed to decode thumbnail: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 100 {
		t.Errorf("expected 100x100 thumbnail, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLocalImageStore_Save_RejectsNonImage(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(strings.NewReader("definitely not an image"))
	if !errors.Is(err, domain.ErrUnsupportedImage) {
		t.Errorf("expected ErrUnsupportedImage, got %v", err)
	}
}
