package imaging

import "testing"

func TestNew_Dimensions(t *testing.T) {
	b := New(4, 3)
	if b.Width != 4 || b.Height != 3 {
		t.Errorf("got %dx%d, want 4x3", b.Width, b.Height)
	}
	if len(b.Pix) != 4*3*Channels {
		t.Errorf("got %d bytes, want %d", len(b.Pix), 4*3*Channels)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		buf  *Buffer
	}{
		{"nil buffer", nil},
		{"zero width", &Buffer{Width: 0, Height: 4, Pix: []byte{}}},
		{"zero height", &Buffer{Width: 4, Height: 0, Pix: []byte{}}},
		{"negative width", &Buffer{Width: -1, Height: 4, Pix: []byte{}}},
		{"short pix slice", &Buffer{Width: 2, Height: 2, Pix: make([]byte, 11)}},
		{"long pix slice", &Buffer{Width: 2, Height: 2, Pix: make([]byte, 13)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.buf.Validate(); err != ErrInvalidBuffer {
				t.Errorf("Validate() = %v, want ErrInvalidBuffer", err)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	b := New(2, 2)
	b.Pix[0] = 200

	c := b.Clone()
	if c.Pix[0] != 200 {
		t.Fatalf("clone pixel = %d, want 200", c.Pix[0])
	}

	c.Pix[0] = 10
	if b.Pix[0] != 200 {
		t.Errorf("mutating clone changed original: %d", b.Pix[0])
	}
}

func TestPixels(t *testing.T) {
	b := New(640, 480)
	if got := b.Pixels(); got != 640*480 {
		t.Errorf("Pixels() = %d, want %d", got, 640*480)
	}
}
