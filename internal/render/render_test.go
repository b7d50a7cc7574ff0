package render

import (
	"image/color"
	"testing"
)

func TestFade(t *testing.T) {
	black := color.RGBA{0, 0, 0, 0xff}
	tests := []struct {
		name  string
		c     color.RGBA
		alpha float64
		want  color.RGBA
	}{
		{"opaque", black, 1, black},
		{"over one", black, 1.5, black},
		{"transparent", black, 0, color.RGBA{}},
		{"half black", black, 0.5, color.RGBA{0, 0, 0, 127}},
		{"half red", color.RGBA{0xff, 0, 0, 0xff}, 0.5, color.RGBA{127, 0, 0, 127}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fade(tt.c, tt.alpha); got != tt.want {
				t.Errorf("Fade = %v, want %v", got, tt.want)
			}
		})
	}
}
