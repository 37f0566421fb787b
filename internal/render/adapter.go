// Package render turns finished pixel buffers into image files and terminal
// previews.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/davidlowryduda/phase-mag-plot/internal/compression"
	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
)

// ErrEmptyBuffer is returned when asked to render a buffer with no pixels.
var ErrEmptyBuffer = errors.New("render: empty pixel buffer")

// Adapter renders pixel buffers at an optional output size.
type Adapter struct {
	// Width and Height of the output image. Zero keeps the buffer size.
	Width  int
	Height int

	logger hclog.Logger
}

// New creates an Adapter. A nil logger discards output.
func New(logger hclog.Logger, width, height int) *Adapter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Adapter{Width: width, Height: height, logger: logger.Named("render")}
}

// Image converts buf to an image, resampling with the buffer's interpolation
// when the adapter has an output size that differs from the buffer.
func (a *Adapter) Image(buf *domain.PixelBuffer) (image.Image, error) {
	if buf == nil || buf.Rows == 0 || buf.Cols == 0 || len(buf.Pix) != buf.Rows*buf.Cols {
		return nil, ErrEmptyBuffer
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, fmt.Errorf("render: invalid output size %dx%d", a.Width, a.Height)
	}

	interp, err := Interpolator(buf.Interpolation)
	if err != nil {
		return nil, err
	}

	img := ToImage(buf)
	w, h := a.size(buf)
	if w == buf.Cols && h == buf.Rows {
		return img, nil
	}
	a.logger.Debug("resampling", "from", fmt.Sprintf("%dx%d", buf.Cols, buf.Rows),
		"to", fmt.Sprintf("%dx%d", w, h), "interpolation", buf.Interpolation)
	return Resample(img, w, h, interp), nil
}

func (a *Adapter) size(buf *domain.PixelBuffer) (w, h int) {
	w, h = a.Width, a.Height
	if w == 0 {
		w = buf.Cols
	}
	if h == 0 {
		h = buf.Rows
	}
	return w, h
}

// Encode renders buf and writes it to w with enc.
func (a *Adapter) Encode(w io.Writer, buf *domain.PixelBuffer, enc Encoder) error {
	img, err := a.Image(buf)
	if err != nil {
		return err
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// WriteFile renders buf to path. The encoder is chosen from the extension,
// and a trailing .gz or .xz compresses the encoded stream.
func (a *Adapter) WriteFile(path string, buf *domain.PixelBuffer) (err error) {
	enc, format, err := EncoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	cw, err := compression.NewWriter(f, format)
	if err != nil {
		return err
	}
	if err := a.Encode(cw, buf, enc); err != nil {
		return err
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("failed to finish compressed stream: %w", err)
	}

	a.logger.Debug("wrote image", "path", path, "compression", string(format))
	return nil
}

// Metadata describes a rendered plot for the extent sidecar.
type Metadata struct {
	Extent        domain.Extent `json:"extent"`
	Rows          int           `json:"rows"`
	Cols          int           `json:"cols"`
	Interpolation string        `json:"interpolation"`
}

// MetadataOf returns the sidecar metadata of buf.
func MetadataOf(buf *domain.PixelBuffer) Metadata {
	interp := buf.Interpolation
	if interp == "" {
		interp = DefaultInterpolation
	}
	return Metadata{Extent: buf.Extent, Rows: buf.Rows, Cols: buf.Cols, Interpolation: interp}
}

// WriteExtent writes the metadata of buf as indented JSON to path.
func WriteExtent(path string, buf *domain.PixelBuffer) error {
	data, err := json.MarshalIndent(MetadataOf(buf), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal extent: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - plot metadata is not sensitive
		return fmt.Errorf("failed to write extent file: %w", err)
	}
	return nil
}
