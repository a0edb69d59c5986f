package filter

import (
	"testing"

	"github.com/backmassage/pixelbench/internal/imaging"
)

// solid builds a w×h buffer filled with one RGB color.
func solid(w, h int, r, g, b byte) *imaging.Buffer {
	buf := imaging.New(w, h)
	for i := 0; i < len(buf.Pix); i += imaging.Channels {
		buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = r, g, b
	}
	return buf
}

// pixelAt returns the three channel values of pixel (x, y).
func pixelAt(b *imaging.Buffer, x, y int) (byte, byte, byte) {
	i := (y*b.Width + x) * imaging.Channels
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

func TestGrayscale_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b byte
		want    byte
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"pure red", 255, 0, 0, 76},    // round(0.299*255)
		{"pure green", 0, 255, 0, 150}, // round(0.587*255)
		{"pure blue", 0, 0, 255, 29},   // round(0.114*255)
		{"mixed", 100, 150, 200, 141},  // round(29.9+88.05+22.8)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := solid(2, 2, tt.r, tt.g, tt.b)
			if err := Grayscale(buf); err != nil {
				t.Fatalf("Grayscale: %v", err)
			}
			r, g, b := pixelAt(buf, 1, 1)
			if r != tt.want || g != tt.want || b != tt.want {
				t.Errorf("got (%d,%d,%d), want all %d", r, g, b, tt.want)
			}
		})
	}
}

func TestGrayscale_AllChannelsEqual(t *testing.T) {
	buf := imaging.New(3, 3)
	for i := range buf.Pix {
		buf.Pix[i] = byte(i * 41) // arbitrary non-uniform content
	}
	if err := Grayscale(buf); err != nil {
		t.Fatalf("Grayscale: %v", err)
	}
	for i := 0; i < len(buf.Pix); i += imaging.Channels {
		if buf.Pix[i] != buf.Pix[i+1] || buf.Pix[i+1] != buf.Pix[i+2] {
			t.Fatalf("pixel %d channels differ: %d %d %d", i/imaging.Channels, buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2])
		}
	}
}

func TestGrayscale_InvalidBuffer(t *testing.T) {
	buf := &imaging.Buffer{Width: 0, Height: 5}
	if err := Grayscale(buf); err != imaging.ErrInvalidBuffer {
		t.Errorf("got %v, want ErrInvalidBuffer", err)
	}
}
