// Package imaging defines the in-memory image buffer shared by the codec
// and filter layers: row-major, interleaved 8-bit R,G,B.
package imaging

import "errors"

// Channels is fixed: every buffer carries interleaved R,G,B bytes.
const Channels = 3

// ErrInvalidBuffer reports a buffer whose dimensions or backing slice are
// unusable by the filter pipeline.
var ErrInvalidBuffer = errors.New("invalid image buffer")

// Buffer is one decoded image. A Buffer is exclusively owned by the stage
// currently processing it and is never shared between workers; each worker
// decodes into its own instance.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte // len == Width*Height*Channels
}

// New allocates a zeroed w×h RGB buffer.
func New(w, h int) *Buffer {
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*Channels),
	}
}

// Validate checks the dimension and length invariants. Filters call this
// before touching pixel data.
func (b *Buffer) Validate() error {
	if b == nil || b.Width <= 0 || b.Height <= 0 {
		return ErrInvalidBuffer
	}
	if len(b.Pix) != b.Width*b.Height*Channels {
		return ErrInvalidBuffer
	}
	return nil
}

// Clone returns an independent copy of b with its own pixel storage.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]byte, len(b.Pix)),
	}
	copy(out.Pix, b.Pix)
	return out
}

// Pixels returns the pixel count (not the byte count).
func (b *Buffer) Pixels() uint64 {
	return uint64(b.Width) * uint64(b.Height)
}
