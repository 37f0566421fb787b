// Package compression wraps rendered images and gradient inputs in optional
// gzip or xz streams, selected by file suffix.
package compression

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Format identifies a stream compression format.
type Format string

const (
	// None leaves the stream untouched.
	None Format = ""
	// Gzip selects gzip (.gz).
	Gzip Format = "gz"
	// XZ selects xz (.xz).
	XZ Format = "xz"
)

// MaxDecompressedSize bounds how much a reader will inflate.
const MaxDecompressedSize = 256 * 1024 * 1024

// ErrSizeLimit is returned when a compressed stream inflates past its limit.
var ErrSizeLimit = errors.New("compression: decompression size limit exceeded")

// Detect returns the compression format implied by path's final extension,
// and path with that extension removed. "plot.png.xz" yields (XZ, "plot.png").
func Detect(path string) (Format, string) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz":
		return Gzip, strings.TrimSuffix(path, filepath.Ext(path))
	case ".xz":
		return XZ, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return None, path
}

// nopCloser turns an io.Writer into an io.WriteCloser whose Close does nothing.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewWriter wraps w in a compressor for f. Close flushes the compressor but
// does not close w.
func NewWriter(w io.Writer, f Format) (io.WriteCloser, error) {
	switch f {
	case None:
		return nopCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case XZ:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzw, nil
	default:
		return nil, fmt.Errorf("unsupported compression format %q", f)
	}
}

// NewReader wraps r in a decompressor for f, limited to MaxDecompressedSize.
func NewReader(r io.Reader, f Format) (io.Reader, error) {
	switch f {
	case None:
		return r, nil
	case Gzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return NewLimitedReader(gzr, MaxDecompressedSize), nil
	case XZ:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return NewLimitedReader(xzr, MaxDecompressedSize), nil
	default:
		return nil, fmt.Errorf("unsupported compression format %q", f)
	}
}

// LimitedReader reads from R until Remaining bytes have been consumed and
// then fails with ErrSizeLimit if R still has data.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{R: r, Remaining: maxBytes}
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		var first [1]byte
		n, err := l.R.Read(first[:])
		if n > 0 {
			return 0, ErrSizeLimit
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}
