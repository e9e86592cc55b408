package simulation

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for unreadable colors.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor reads an SVG color name ("black", "navy"), a "#rrggbb" hex
// triplet or three decimal components "R G B".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	if fields := strings.Fields(s); len(fields) == 3 {
		var rgb [3]uint8
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
			}
			rgb[i] = uint8(v)
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
