package filter

import "github.com/backmassage/pixelbench/internal/imaging"

// Apply runs the fixed pipeline on b: grayscale, box blur, Sobel.
// The order matters: graying first removes chroma before the blur, and
// blurring before Sobel softens single-pixel noise that would otherwise
// register as edges.
func Apply(b *imaging.Buffer) error {
	if err := Grayscale(b); err != nil {
		return err
	}
	if err := BoxBlur(b, DefaultBlurRadius); err != nil {
		return err
	}
	return Sobel(b)
}
