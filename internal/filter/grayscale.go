package filter

import (
	"math"

	"github.com/backmassage/pixelbench/internal/imaging"
)

// Grayscale converts b to grayscale in place, writing the luminance value
// into all three channels.
func Grayscale(b *imaging.Buffer) error {
	if err := b.Validate(); err != nil {
		return err
	}
	p := b.Pix
	for i := 0; i < len(p); i += imaging.Channels {
		gray := luminance(p[i], p[i+1], p[i+2])
		p[i], p[i+1], p[i+2] = gray, gray, gray
	}
	return nil
}

// luminance applies the Rec. 601 weights with round-half-up rounding and an
// 8-bit clamp. Every stage that needs a gray value goes through this one
// function so serial and parallel runs produce identical pixels.
func luminance(r, g, b byte) byte {
	v := math.Round(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
