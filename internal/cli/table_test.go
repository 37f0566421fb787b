package cli

import (
	"strings"
	"testing"
)

func TestTableAddRowFitsHeaders(t *testing.T) {
	table := NewTable([]string{"Name", "Expression"})
	table.AddRow([]string{"z"})
	table.AddRow([]string{"exp", "e^z", "extra"})

	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[0][1] != "" {
		t.Errorf("padded cell = %q, want empty", table.rows[0][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "EXPRESSION"})
	table.AddRow([]string{"mobius", "(z-1)/(z+1)"})
	table.AddRow([]string{"z", "z"})

	want := "" +
		"NAME    EXPRESSION \n" +
		"------  -----------\n" +
		"mobius  (z-1)/(z+1)\n" +
		"z       z          \n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Render() of headerless table = %q, want empty", out)
	}

	out := NewTable([]string{"A", "B"}).Render()
	if lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n"); len(lines) != 2 {
		t.Errorf("expected header and separator only, got %q", out)
	}
}

func TestTableIgnoresColourSequences(t *testing.T) {
	swatch := "\033[48;2;255;0;0m  \033[0m"
	table := NewTable([]string{"SWATCH", "NAME"})
	table.AddRow([]string{swatch, "red"})

	lines := strings.Split(table.Render(), "\n")
	if got := visibleWidth(lines[0]); got != visibleWidth(lines[2]) {
		t.Errorf("header width %d != row width %d", got, visibleWidth(lines[2]))
	}
	if visibleWidth(swatch) != 2 {
		t.Errorf("visibleWidth(swatch) = %d, want 2", visibleWidth(swatch))
	}
}

func TestTableWrapsColumns(t *testing.T) {
	table := NewTable([]string{"NAME", "DESCRIPTION"})
	table.SetColumnMaxWidth(1, 12)
	table.AddRow([]string{"hsluv", "perceptually uniform cyclic hue wheel"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 2+4 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[2], "hsluv") || strings.TrimSpace(lines[3]) != "uniform" {
		t.Errorf("unexpected wrapping:\n%s", strings.Join(lines, "\n"))
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"→", 3, "→  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"", 4, []string{""}},
	}

	for _, tt := range tests {
		got := wrapText(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
