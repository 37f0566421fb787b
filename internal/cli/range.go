package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
)

// rangeFlag is a pflag.Value parsing "min:max".
type rangeFlag domain.Range

var _ pflag.Value = (*rangeFlag)(nil)

func (r *rangeFlag) String() string { return domain.Range(*r).String() }

func (r *rangeFlag) Type() string { return "min:max" }

func (r *rangeFlag) Set(s string) error {
	minText, maxText, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("expected min:max, got %q", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(minText), 64)
	if err != nil {
		return fmt.Errorf("invalid range minimum %q: %w", minText, err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(maxText), 64)
	if err != nil {
		return fmt.Errorf("invalid range maximum %q: %w", maxText, err)
	}
	parsed := domain.Range{Min: lo, Max: hi}
	if err := parsed.Validate("axis"); err != nil {
		return err
	}
	*r = rangeFlag(parsed)
	return nil
}
