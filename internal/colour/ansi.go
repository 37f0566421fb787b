package colour

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8

	// upperHalfBlock paints the top half of a cell in the foreground colour.
	upperHalfBlock = "▀"
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

func fg(c RGB) string {
	q := c.RGBA8()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, q.R, q.G, q.B, ansiSuffix)
}

func bg(c RGB) string {
	q := c.RGBA8()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, q.R, q.G, q.B, ansiSuffix)
}

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return block
	}
	return bg(c) + block + ansiReset
}

// SupportsANSIColours reports whether colour escapes should be written to w:
// w must be a terminal and NO_COLOR must be unset or empty.
func SupportsANSIColours(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// HalfBlocks renders two rows of pixels as one line of terminal cells.
// Each cell shows top in its upper half and bottom in its lower half.
// bottom may be nil for a trailing odd row.
func HalfBlocks(top, bottom []RGB) string {
	var sb strings.Builder
	for i, t := range top {
		if DisableColourOutput {
			sb.WriteString(upperHalfBlock)
			continue
		}
		sb.WriteString(fg(t))
		if bottom != nil && i < len(bottom) {
			sb.WriteString(bg(bottom[i]))
		}
		sb.WriteString(upperHalfBlock)
		sb.WriteString(ansiReset)
	}
	return sb.String()
}
