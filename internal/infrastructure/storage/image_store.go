package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// LocalImageStore implements domain.ImageStore on the local filesystem.
// Uploads are re-encoded as JPEG capped at maxWidth, and a square
// thumbnail is written alongside under thumb/.
type LocalImageStore struct {
	dir       string
	maxWidth  int
	thumbSize int
	quality   int
}

// NewLocalImageStore creates the store and its directories
func NewLocalImageStore(dir string, maxWidth, thumbSize, quality int) (*LocalImageStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "thumb"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directories: %w", err)
	}
	return &LocalImageStore{
		dir:       dir,
		maxWidth:  maxWidth,
		thumbSize: thumbSize,
		quality:   quality,
	}, nil
}

// Save implements domain.ImageStore
func (s *LocalImageStore) Save(r io.Reader) (*domain.StoredImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.ErrUnsupportedImage
	}

	filename := uuid.New().String() + ".jpg"

	resized := s.capWidth(src)
	if err := s.writeJPEG(filepath.Join(s.dir, filename), resized); err != nil {
		return nil, err
	}

	thumb := scale(src, image.Rect(0, 0, s.thumbSize, s.thumbSize))
	if err := s.writeJPEG(filepath.Join(s.dir, "thumb", filename), thumb); err != nil {
		return nil, err
	}

	bounds := resized.Bounds()
	return &domain.StoredImage{
		Filename: filename,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// capWidth scales the image down to maxWidth preserving aspect ratio.
// Images already narrow enough are returned untouched.
func (s *LocalImageStore) capWidth(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= s.maxWidth {
		return src
	}

	height := bounds.Dy() * s.maxWidth / bounds.Dx()
	return scale(src, image.Rect(0, 0, s.maxWidth, height))
}

func (s *LocalImageStore) writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return nil
}

func scale(src image.Image, rect image.Rectangle) image.Image {
	dst := image.NewRGBA(rect)
	draw.CatmullRom.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
