package filter

import (
	"math"

	"github.com/backmassage/pixelbench/internal/imaging"
)

// Fixed 3×3 Sobel kernels for the horizontal and vertical gradients.
var (
	sobelX = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// Sobel replaces b's pixels with the gradient magnitude of its luminance,
// written into all three channels. The convolution reads a temporary
// single-channel gray plane (never the buffer being written) and clamps
// out-of-range samples to the nearest edge pixel, matching the blur stage's
// border policy.
func Sobel(b *imaging.Buffer) error {
	if err := b.Validate(); err != nil {
		return err
	}
	w, h := b.Width, b.Height

	gray := make([]byte, w*h)
	for i, j := 0, 0; i < len(b.Pix); i, j = i+imaging.Channels, j+1 {
		gray[j] = luminance(b.Pix[i], b.Pix[i+1], b.Pix[i+2])
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var gx, gy int
			for ky := 0; ky < 3; ky++ {
				sy := clampIndex(y+ky-1, h)
				for kx := 0; kx < 3; kx++ {
					v := int(gray[sy*w+clampIndex(x+kx-1, w)])
					gx += sobelX[ky][kx] * v
					gy += sobelY[ky][kx] * v
				}
			}
			mag := magnitude(gx, gy)
			i := (y*w + x) * imaging.Channels
			b.Pix[i], b.Pix[i+1], b.Pix[i+2] = mag, mag, mag
		}
	}
	return nil
}

// magnitude rounds sqrt(gx²+gy²) and clamps it to the 8-bit range.
func magnitude(gx, gy int) byte {
	m := math.Round(math.Sqrt(float64(gx*gx + gy*gy)))
	if m > 255 {
		return 255
	}
	return byte(m)
}
