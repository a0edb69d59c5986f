package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/backmassage/pixelbench/internal/imaging"
)

func TestEncodeDecode_PNGRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	src := imaging.New(5, 4)
	for i := range src.Pix {
		src.Pix[i] = byte((i * 31) % 256)
	}

	if err := EncodePNG(path, src); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	got, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Width != 5 || got.Height != 4 {
		t.Fatalf("got %dx%d, want 5x4", got.Width, got.Height)
	}
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("PNG roundtrip changed pixel data")
	}
}

func TestDecode_BMP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.bmp")

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(2, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	writeWith(t, path, func(f *os.File) error { return bmp.Encode(f, img) })

	buf, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if buf.Width != 3 || buf.Height != 2 {
		t.Fatalf("got %dx%d, want 3x2", buf.Width, buf.Height)
	}
	if buf.Pix[0] != 10 || buf.Pix[1] != 20 || buf.Pix[2] != 30 {
		t.Errorf("pixel (0,0) = %v, want (10,20,30)", buf.Pix[:3])
	}
}

func TestDecode_JPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.jpg")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	writeWith(t, path, func(f *os.File) error {
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	})

	buf, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if buf.Width != 8 || buf.Height != 8 {
		t.Fatalf("got %dx%d, want 8x8", buf.Width, buf.Height)
	}
	// JPEG is lossy; only check the decode landed near the encoded gray.
	if d := int(buf.Pix[0]) - 128; d < -4 || d > 4 {
		t.Errorf("pixel value %d too far from 128", buf.Pix[0])
	}
}

func TestDecode_ForcesThreeChannels(t *testing.T) {
	// A grayscale source must still come back as interleaved R,G,B.
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.png")

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 77})
	buf := imagingFromEncode(t, path, img)

	if len(buf.Pix) != 2*2*imaging.Channels {
		t.Fatalf("got %d bytes, want %d", len(buf.Pix), 2*2*imaging.Channels)
	}
	if buf.Pix[0] != 77 || buf.Pix[1] != 77 || buf.Pix[2] != 77 {
		t.Errorf("gray pixel = %v, want (77,77,77)", buf.Pix[:3])
	}
}

func TestDecode_MissingFile(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecode_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(path); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestEncodePNG_InvalidBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := EncodePNG(path, &imaging.Buffer{Width: 0, Height: 3}); err == nil {
		t.Error("expected error for invalid buffer")
	}
}

// writeWith creates path and runs encode against the open file.
func writeWith(t *testing.T, path string, encode func(*os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := encode(f); err != nil {
		f.Close()
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

// imagingFromEncode PNG-encodes img to path and decodes it back.
func imagingFromEncode(t *testing.T, path string, img image.Image) *imaging.Buffer {
	t.Helper()
	writeWith(t, path, func(f *os.File) error {
		return png.Encode(f, img)
	})
	buf, err := Decode(path)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}
