package compression

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path       string
		wantFormat Format
		wantBase   string
	}{
		{"plot.png", None, "plot.png"},
		{"plot.png.xz", XZ, "plot.png"},
		{"out/plot.tiff.GZ", Gzip, "out/plot.tiff"},
		{"noext", None, "noext"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, base := Detect(tt.path)
			if f != tt.wantFormat || base != tt.wantBase {
				t.Errorf("Detect(%q) = (%q, %q), want (%q, %q)", tt.path, f, base, tt.wantFormat, tt.wantBase)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat("domain colouring ", 500))

	for name, f := range map[string]Format{"none": None, "gzip": Gzip, "xz": XZ} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, f)
			if err != nil {
				t.Fatalf("NewWriter: %v", err)
			}
			if _, err := w.Write(payload); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
			if f != None && buf.Len() >= len(payload) {
				t.Errorf("compressed size %d not smaller than %d", buf.Len(), len(payload))
			}

			r, err := NewReader(&buf, f)
			if err != nil {
				t.Fatalf("NewReader: %v", err)
			}
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Error("round trip changed the payload")
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(io.Discard, "bz2"); err == nil {
		t.Error("NewWriter accepted bz2")
	}
	if _, err := NewReader(strings.NewReader(""), "bz2"); err == nil {
		t.Error("NewReader accepted bz2")
	}
}

func TestLimitedReader(t *testing.T) {
	exact := NewLimitedReader(strings.NewReader("abcd"), 4)
	got, err := io.ReadAll(exact)
	if err != nil || string(got) != "abcd" {
		t.Errorf("exact limit: %q, %v", got, err)
	}

	over := NewLimitedReader(strings.NewReader("abcdef"), 4)
	_, err = io.ReadAll(over)
	if !errors.Is(err, ErrSizeLimit) {
		t.Errorf("over limit error = %v, want ErrSizeLimit", err)
	}
}
