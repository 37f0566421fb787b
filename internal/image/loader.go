// Package image provides utilities for loading gradient images used as
// colormaps.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/davidlowryduda/phase-mag-plot/internal/compression"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// Loader handles loading images.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF, optionally wrapped in
// gzip (.gz) or xz (.xz).
func (l *FileLoader) Load(path string) (image.Image, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}

	r, closeFn, err := open(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// open opens path for decoding, decompressing .gz and .xz files.
func open(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image file: %w", err)
	}

	format, _ := compression.Detect(path)
	r, err := compression.NewReader(file, format)
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("failed to decompress image file: %w", err)
	}
	return r, file.Close, nil
}

// checkFile verifies that path names an existing regular file.
func checkFile(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to stat image file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// ValidateImagePath checks that path points to a decodable image file
// without decoding the pixel data.
func ValidateImagePath(path string) error {
	if err := checkFile(path); err != nil {
		return err
	}
	if !IsImageFile(path) {
		return fmt.Errorf("unsupported image extension %q (supported: %s)",
			filepath.Ext(path), strings.Join(SupportedImageExtensions(), ", "))
	}

	r, closeFn, err := open(path)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, _, err := image.DecodeConfig(r); err != nil {
		return fmt.Errorf("unsupported or invalid image format: %w", err)
	}
	return nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// IsImageFile checks if a file has a supported image extension, looking
// through a trailing .gz or .xz.
func IsImageFile(path string) bool {
	_, base := compression.Detect(path)
	ext := strings.ToLower(filepath.Ext(base))
	return slices.Contains(SupportedImageExtensions(), ext)
}
