// Package codec is the image I/O boundary: it decodes PNG, JPEG, and BMP
// files into RGB buffers and encodes buffers back to PNG. The rest of the
// pipeline never touches the filesystem or the stdlib image types.
package codec

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/backmassage/pixelbench/internal/imaging"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
)

// Decode reads the image at path and returns a 3-channel RGB buffer,
// regardless of the source color model. Gray, paletted, and alpha inputs are
// all flattened to R,G,B.
func Decode(path string) (*imaging.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return fromImage(img), nil
}

// fromImage flattens any stdlib image into an RGB buffer. NRGBA and RGBA get
// a direct byte copy path; everything else goes through the color model.
func fromImage(img image.Image) *imaging.Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := imaging.New(w, h)

	switch src := img.(type) {
	case *image.NRGBA:
		copyRGBA(buf, src.Pix, src.Stride, w, h)
	case *image.RGBA:
		copyRGBA(buf, src.Pix, src.Stride, w, h)
	default:
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				buf.Pix[i] = byte(r >> 8)
				buf.Pix[i+1] = byte(g >> 8)
				buf.Pix[i+2] = byte(b >> 8)
				i += imaging.Channels
			}
		}
	}
	return buf
}

// copyRGBA copies 4-byte interleaved pixel rows into the 3-byte buffer,
// dropping alpha.
func copyRGBA(buf *imaging.Buffer, pix []byte, stride, w, h int) {
	i := 0
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			buf.Pix[i] = row[x*4]
			buf.Pix[i+1] = row[x*4+1]
			buf.Pix[i+2] = row[x*4+2]
			i += imaging.Channels
		}
	}
}

// EncodePNG writes b to path as an opaque PNG.
func EncodePNG(path string, b *imaging.Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	i := 0
	for j := 0; j < len(img.Pix); j += 4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
		i += imaging.Channels
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
