package flock

import (
	"errors"
	"image/color"
	"testing"
)

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

func TestParseColorScheme(t *testing.T) {
	tests := []struct {
		in   string
		want ColorScheme
	}{
		{"", ColorScheme{Kind: GreenPurple}},
		{"green-purple", ColorScheme{Kind: GreenPurple}},
		{" Purple-Green ", ColorScheme{Kind: PurpleGreen}},
		{"black&white", ColorScheme{Kind: BlackAndWhite}},
		{"const 1 2 3", ConstantScheme(1, 2, 3)},
		{"const 300 20 x", ConstantScheme(0, 20, 0)},
		{"const -4 255", ConstantScheme(0, 255, 0)},
		{"const", ConstantScheme(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorScheme(tt.in)
			if err != nil {
				t.Fatalf("ParseColorScheme(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColorScheme(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseColorScheme("rainbow"); !errors.Is(err, ErrUnknownColorScheme) {
		t.Errorf("expected ErrUnknownColorScheme, got %v", err)
	}
}

func TestColorScheme_TextRoundTrip(t *testing.T) {
	for _, cs := range []ColorScheme{{Kind: GreenPurple}, {Kind: PurpleGreen}, {Kind: BlackAndWhite}, ConstantScheme(9, 8, 7)} {
		text, err := cs.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back ColorScheme
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != cs {
			t.Errorf("%q decoded to %+v; want %+v", text, back, cs)
		}
	}
}

func TestColorScheme_Color(t *testing.T) {
	tests := []struct {
		name     string
		scheme   ColorScheme
		sep, ali int
		want     color.RGBA
	}{
		{"green-purple lonely", ColorScheme{Kind: GreenPurple}, 1, 1, rgb(16, 253, 2)},
		{"green-purple crowded", ColorScheme{Kind: GreenPurple}, 20, 200, rgb(255, 0, 255)},
		{"purple-green lonely", ColorScheme{Kind: PurpleGreen}, 1, 1, rgb(239, 2, 2)},
		{"purple-green crowded", ColorScheme{Kind: PurpleGreen}, 16, 130, rgb(0, 255, 255)},
		{"black&white", ColorScheme{Kind: BlackAndWhite}, 3, 4, rgb(128, 128, 128)},
		{"black&white saturated", ColorScheme{Kind: BlackAndWhite}, 0, 8, rgb(255, 255, 255)},
		{"const ignores counts", ConstantScheme(10, 20, 30), 99, 99, rgb(10, 20, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scheme.Color(tt.sep, tt.ali)
			if got != tt.want {
				t.Errorf("Color(%d, %d) = %v; want %v", tt.sep, tt.ali, got, tt.want)
			}
			if again := tt.scheme.Color(tt.sep, tt.ali); again != got {
				t.Errorf("Color is not deterministic: %v then %v", got, again)
			}
		})
	}
}

func TestColorScheme_ConstantIgnoresCounts(t *testing.T) {
	cs := ConstantScheme(1, 2, 3)
	want := cs.Color(0, 0)
	for sep := 0; sep < 40; sep += 7 {
		for ali := 0; ali < 400; ali += 33 {
			if got := cs.Color(sep, ali); got != want {
				t.Fatalf("Color(%d, %d) = %v; want %v", sep, ali, got, want)
			}
		}
	}
}
