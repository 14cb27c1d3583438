package ggplot

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

// Verify that a bare color is a valid shape style.
var _ BackendStyle = BackendColor{}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   BackendColor
		want RGBA
	}{
		{"black", Black, RGBA{0, 0, 0, 1}},
		{"white", White, RGBA{1, 1, 1, 1}},
		{"half alpha kept", BackendColor{RGB: [3]uint8{255, 0, 51}, Alpha: 0.5}, RGBA{1, 0, 0.2, 0.5}},
		{"transparent", Transparent, RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 3 {
		for _, g := range []uint8{0, 1, 127, 128, 254, 255} {
			in := BackendColor{RGB: [3]uint8{uint8(r), g, 255 - uint8(r)}, Alpha: 0.25}
			if got := Denormalize(Normalize(in)); got != in {
				t.Fatalf("round trip of %v = %v", in, got)
			}
		}
	}
}

func TestDenormalizeClamps(t *testing.T) {
	got := Denormalize(RGBA{R: -0.5, G: 2, B: 0.5, A: 3})
	want := BackendColor{RGB: [3]uint8{0, 255, 128}, Alpha: 1}
	if got != want {
		t.Errorf("Denormalize() = %v, want %v", got, want)
	}
}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", RGB(0, 0, 0), 0, 0, 0, 65535},
		{"opaque white", RGB(1, 1, 1), 65535, 65535, 65535, 65535},
		{"transparent", RGBA{}, 0, 0, 0, 0},
		{"50% alpha red", RGBA{1, 0, 0, 0.5}, 32896, 0, 0, 32896},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in     string
		want   BackendColor
		wantOK bool
	}{
		{"#ff0000", Red, true},
		{"00ff00", Green, true},
		{"#00f", Blue, true},
		{"#fff8", BackendColor{RGB: [3]uint8{255, 255, 255}, Alpha: 136.0 / 255}, true},
		{"#00000080", BackendColor{Alpha: 128.0 / 255}, true},
		{"#zzzzzz", BackendColor{Alpha: 1}, false},
		{"#12345", BackendColor{Alpha: 1}, false},
		{"", BackendColor{Alpha: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Hex(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Hex(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBackendColorStyle(t *testing.T) {
	if w := Red.StrokeWidth(); w != 1 {
		t.Errorf("StrokeWidth() = %v, want 1", w)
	}
	if c := Red.Color(); c != Red {
		t.Errorf("Color() = %v, want %v", c, Red)
	}
}
