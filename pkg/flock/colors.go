package flock

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknownColorScheme is returned by ParseColorScheme for unrecognized names.
var ErrUnknownColorScheme = errors.New("unknown color scheme")

// SchemeKind enumerates the supported ways of deriving an agent color from its neighbor counts.
type SchemeKind uint8

const (
	GreenPurple   SchemeKind = iota // lonely agents green, crowded agents purple (default)
	PurpleGreen                     // the reverse of GreenPurple
	BlackAndWhite                   // gray level grows with the alignment count
	Constant                        // one fixed color
)

var schemeNames = map[SchemeKind]string{
	GreenPurple:   "green-purple",
	PurpleGreen:   "purple-green",
	BlackAndWhite: "black&white",
	Constant:      "const",
}

// ColorScheme is the closed set {GreenPurple, PurpleGreen, BlackAndWhite, Constant(r,g,b)}.
// RGB is only meaningful for Constant.
// The zero value is GreenPurple.
type ColorScheme struct {
	Kind SchemeKind
	RGB  color.RGBA
}

// ConstantScheme returns a Constant scheme painting every agent with r, g, b.
func ConstantScheme(r, g, b uint8) ColorScheme {
	return ColorScheme{Kind: Constant, RGB: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// ParseColorScheme reads one of "green-purple", "purple-green", "black&white"
// or "const R G B". An empty string selects green-purple.
// Constant components that are missing, not integers or outside 0..255 become 0.
func ParseColorScheme(s string) (ColorScheme, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", schemeNames[GreenPurple]:
		return ColorScheme{Kind: GreenPurple}, nil
	case schemeNames[PurpleGreen]:
		return ColorScheme{Kind: PurpleGreen}, nil
	case schemeNames[BlackAndWhite]:
		return ColorScheme{Kind: BlackAndWhite}, nil
	}

	fields := strings.Fields(s)
	if len(fields) == 0 || strings.ToLower(fields[0]) != schemeNames[Constant] {
		return ColorScheme{}, fmt.Errorf("%w: %q", ErrUnknownColorScheme, s)
	}
	var rgb [3]uint8
	for i := range rgb {
		if i+1 >= len(fields) {
			break
		}
		v, err := strconv.Atoi(fields[i+1])
		if err != nil || v < 0 || v > 255 {
			continue
		}
		rgb[i] = uint8(v)
	}
	return ConstantScheme(rgb[0], rgb[1], rgb[2]), nil
}

// String returns the textual form accepted by ParseColorScheme.
func (cs ColorScheme) String() string {
	if cs.Kind == Constant {
		return fmt.Sprintf("const %d %d %d", cs.RGB.R, cs.RGB.G, cs.RGB.B)
	}
	if name, ok := schemeNames[cs.Kind]; ok {
		return name
	}
	return fmt.Sprintf("SchemeKind(%d)", cs.Kind)
}

// MarshalText implements encoding.TextMarshaler.
func (cs ColorScheme) MarshalText() ([]byte, error) {
	return []byte(cs.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cs *ColorScheme) UnmarshalText(text []byte) error {
	parsed, err := ParseColorScheme(string(text))
	if err != nil {
		return err
	}
	*cs = parsed
	return nil
}

// Color maps one agent's neighbor counts to its display color.
// It is a pure function of its inputs; Constant ignores the counts.
func (cs ColorScheme) Color(separationCount, alignmentCount int) color.RGBA {
	switch cs.Kind {
	case PurpleGreen:
		g := clip(alignmentCount * 2)
		return color.RGBA{R: clip(255 - separationCount*16), G: g, B: g, A: 255}
	case BlackAndWhite:
		v := clip(alignmentCount * 32)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case Constant:
		c := cs.RGB
		c.A = 255
		return c
	default:
		g := clip(255 - alignmentCount*2)
		return color.RGBA{R: clip(separationCount * 16), G: g, B: 255 - g, A: 255}
	}
}

// Paint recomputes the color of every agent from the last neighbor counts.
func (cs ColorScheme) Paint(colors []color.RGBA, nb *Neighbors) {
	for i := range colors {
		colors[i] = cs.Color(nb.SeparationCounts[i], nb.AlignmentCounts[i])
	}
}

func clip(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
