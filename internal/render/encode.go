package render

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/davidlowryduda/phase-mag-plot/internal/compression"
)

// JPEGQuality is the quality used for .jpg output.
const JPEGQuality = 95

// ErrUnsupportedFormat is returned for output paths with no known encoder.
var ErrUnsupportedFormat = errors.New("render: unsupported output format")

// Encoder writes an image to w.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif": func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	},
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// EncoderFor selects the encoder and stream compression for path, e.g.
// "plot.png.xz" gives the PNG encoder wrapped in xz.
func EncoderFor(path string) (Encoder, compression.Format, error) {
	format, base := compression.Detect(path)
	ext := strings.ToLower(filepath.Ext(base))
	enc, ok := encoders[ext]
	if !ok {
		return nil, format, fmt.Errorf("%w: %q (supported: %s, optionally followed by .gz or .xz)",
			ErrUnsupportedFormat, filepath.Ext(base), strings.Join(SupportedOutputExtensions(), ", "))
	}
	return enc, format, nil
}

// SupportedOutputExtensions returns the image extensions that can be written.
func SupportedOutputExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}
}
