package render

import (
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/davidlowryduda/phase-mag-plot/internal/colour"
	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
)

// Fallback terminal size when stdout is not a terminal.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// TerminalSize returns the size of the terminal on fd, or 80x24 when fd is
// not a terminal.
func TerminalSize(fd int) (cols, rows int) {
	if !term.IsTerminal(fd) {
		return fallbackCols, fallbackRows
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

// StdoutSize returns TerminalSize for standard output.
func StdoutSize() (cols, rows int) {
	return TerminalSize(int(os.Stdout.Fd()))
}

// previewSize fits a w x h image into cols x 2*rows half-block cells,
// keeping the aspect ratio.
func previewSize(w, h, cols, rows int) (int, int) {
	maxH := 2 * rows
	pw, ph := cols, cols*h/w
	if ph > maxH {
		pw, ph = maxH*w/h, maxH
	}
	return max(1, pw), max(1, ph)
}

// Preview writes buf to w as half-block ANSI art fitting within cols x rows
// terminal cells. One line of output holds two image rows.
func (a *Adapter) Preview(w io.Writer, buf *domain.PixelBuffer, cols, rows int) error {
	if buf == nil || buf.Rows == 0 || buf.Cols == 0 {
		return ErrEmptyBuffer
	}
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("render: invalid preview size %dx%d", cols, rows)
	}
	interp, err := Interpolator(buf.Interpolation)
	if err != nil {
		return err
	}

	pw, ph := previewSize(buf.Cols, buf.Rows, cols, rows)
	img := Resample(ToImage(buf), pw, ph, interp)
	a.logger.Debug("preview", "cells", fmt.Sprintf("%dx%d", pw, (ph+1)/2))
	return writeHalfBlocks(w, img)
}

func writeHalfBlocks(w io.Writer, img *image.NRGBA) error {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var bottom []colour.RGB
		if y+1 < b.Max.Y {
			bottom = pixels(img, y+1)
		}
		if _, err := fmt.Fprintln(w, colour.HalfBlocks(pixels(img, y), bottom)); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
	}
	return nil
}
