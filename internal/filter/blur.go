package filter

import "github.com/backmassage/pixelbench/internal/imaging"

// DefaultBlurRadius is the pipeline's fixed blur radius.
const DefaultBlurRadius = 2

// BoxBlur applies a separable box blur of the given radius in place.
// The horizontal pass writes into a temporary buffer and the vertical pass
// reads the temporary and writes back into b, so no pass ever reads a pixel
// it has already written. Out-of-range window samples clamp to the nearest
// edge pixel and the divisor stays 2*radius+1.
//
// Each pass maintains a sliding running sum per channel, so cost is
// O(width*height) regardless of radius.
func BoxBlur(b *imaging.Buffer, radius int) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if radius <= 0 {
		return nil
	}
	tmp := make([]byte, len(b.Pix))
	blurRows(tmp, b.Pix, b.Width, b.Height, radius)
	blurCols(b.Pix, tmp, b.Width, b.Height, radius)
	return nil
}

// blurRows averages each pixel's horizontal window from src into dst.
func blurRows(dst, src []byte, w, h, radius int) {
	window := 2*radius + 1
	for y := 0; y < h; y++ {
		row := y * w * imaging.Channels
		for c := 0; c < imaging.Channels; c++ {
			// Seed the window at x=0; negative offsets clamp to pixel 0.
			sum := 0
			for k := -radius; k <= radius; k++ {
				sum += int(src[row+clampIndex(k, w)*imaging.Channels+c])
			}
			dst[row+c] = byte((sum + window/2) / window)
			for x := 1; x < w; x++ {
				sum += int(src[row+clampIndex(x+radius, w)*imaging.Channels+c])
				sum -= int(src[row+clampIndex(x-1-radius, w)*imaging.Channels+c])
				dst[row+x*imaging.Channels+c] = byte((sum + window/2) / window)
			}
		}
	}
}

// blurCols averages each pixel's vertical window from src into dst.
func blurCols(dst, src []byte, w, h, radius int) {
	window := 2*radius + 1
	stride := w * imaging.Channels
	for x := 0; x < w; x++ {
		col := x * imaging.Channels
		for c := 0; c < imaging.Channels; c++ {
			sum := 0
			for k := -radius; k <= radius; k++ {
				sum += int(src[clampIndex(k, h)*stride+col+c])
			}
			dst[col+c] = byte((sum + window/2) / window)
			for y := 1; y < h; y++ {
				sum += int(src[clampIndex(y+radius, h)*stride+col+c])
				sum -= int(src[clampIndex(y-1-radius, h)*stride+col+c])
				dst[y*stride+col+c] = byte((sum + window/2) / window)
			}
		}
	}
}

// clampIndex clamps i into [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
