package jpegio

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func encodeGray(t *testing.T, width, height int, value byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, width, height, 1, 90)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	scan := bytes.Repeat([]byte{value}, width)
	for y := 0; y < height; y++ {
		if err := w.WriteScanline(scan); err != nil {
			t.Fatalf("WriteScanline %d failed: %v", y, err)
		}
	}
	return buf.Bytes()
}

func TestRoundTripGray(t *testing.T) {
	const width, height = 16, 9
	data := encodeGray(t, width, height, 128)

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	if r.Width() != width || r.Height() != height {
		t.Errorf("descriptor = %dx%d, want %dx%d", r.Width(), r.Height(), width, height)
	}
	if r.Channels() != 1 {
		t.Errorf("channels = %d, want 1", r.Channels())
	}

	scan := make([]byte, width)
	for y := 0; y < height; y++ {
		if err := r.ReadScanline(scan); err != nil {
			t.Fatalf("ReadScanline %d failed: %v", y, err)
		}
		// A uniform image survives the lossy round trip almost exactly.
		for x, v := range scan {
			if d := int(v) - 128; d < -2 || d > 2 {
				t.Fatalf("row %d pixel %d = %d, want ~128", y, x, v)
			}
		}
	}
}

func TestRoundTripRGBDescriptor(t *testing.T) {
	const width, height = 8, 8
	var buf bytes.Buffer
	w, err := NewWriter(&buf, width, height, 3, 90)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	scan := make([]byte, width*3)
	for x := 0; x < width; x++ {
		scan[x*3] = 200
		scan[x*3+1] = 100
		scan[x*3+2] = 50
	}
	for y := 0; y < height; y++ {
		if err := w.WriteScanline(scan); err != nil {
			t.Fatalf("WriteScanline failed: %v", err)
		}
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	if r.Channels() != 3 {
		t.Errorf("channels = %d, want 3", r.Channels())
	}
	got := make([]byte, width*3)
	if err := r.ReadScanline(got); err != nil {
		t.Fatalf("ReadScanline failed: %v", err)
	}
	for c, want := range []int{200, 100, 50} {
		if d := int(got[c]) - want; d < -8 || d > 8 {
			t.Errorf("channel %d = %d, want ~%d", c, got[c], want)
		}
	}
}

func TestReaderStickyError(t *testing.T) {
	data := encodeGray(t, 4, 2, 77)
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	scan := make([]byte, 4)
	for y := 0; y < 2; y++ {
		if err := r.ReadScanline(scan); err != nil {
			t.Fatalf("ReadScanline %d failed: %v", y, err)
		}
	}

	// Reading past the bottom fails, zeroes the buffer, and latches.
	if err := r.ReadScanline(scan); !errors.Is(err, ErrRead) {
		t.Fatalf("over-read: got %v, want ErrRead", err)
	}
	for i, v := range scan {
		if v != 0 {
			t.Errorf("buf[%d] = %d after failed read, want 0", i, v)
		}
	}
	if err := r.ReadScanline(scan); !errors.Is(err, ErrRead) {
		t.Errorf("second over-read: got %v, want ErrRead", err)
	}
}

func TestReaderGarbage(t *testing.T) {
	_, err := NewReader(strings.NewReader("not a jpeg stream"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got %v, want ErrDecode", err)
	}
}

func TestReaderCloseIdempotent(t *testing.T) {
	data := encodeGray(t, 4, 2, 0)
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	scan := make([]byte, 4)
	if err := r.ReadScanline(scan); !errors.Is(err, ErrRead) {
		t.Errorf("read after Close: got %v, want ErrRead", err)
	}
}

func TestWriterValidation(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewWriter(&buf, 0, 4, 1, 90); !errors.Is(err, ErrDimensions) {
		t.Errorf("zero width: got %v, want ErrDimensions", err)
	}
	if _, err := NewWriter(&buf, 4, MaxDim+1, 1, 90); !errors.Is(err, ErrDimensions) {
		t.Errorf("oversized height: got %v, want ErrDimensions", err)
	}
	if _, err := NewWriter(&buf, 4, 4, 2, 90); !errors.Is(err, ErrChannels) {
		t.Errorf("two channels: got %v, want ErrChannels", err)
	}

	// Out-of-range quality values are clamped, not rejected.
	if _, err := NewWriter(&buf, 4, 4, 1, -5); err != nil {
		t.Errorf("quality -5: got %v, want nil", err)
	}
	if _, err := NewWriter(&buf, 4, 4, 1, 100); err != nil {
		t.Errorf("quality 100: got %v, want nil", err)
	}
}

func TestWriterTooManyScanlines(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, 4, 2, 1, 90)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	scan := make([]byte, 4)
	for y := 0; y < 2; y++ {
		if err := w.WriteScanline(scan); err != nil {
			t.Fatalf("WriteScanline %d failed: %v", y, err)
		}
	}
	if buf.Len() == 0 {
		t.Fatal("final scanline did not flush the stream")
	}
	if err := w.WriteScanline(scan); !errors.Is(err, ErrScanlineRange) {
		t.Errorf("extra write: got %v, want ErrScanlineRange", err)
	}
}

func TestWriterAbandon(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, 4, 4, 1, 90)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.WriteScanline(make([]byte, 4)); err != nil {
		t.Fatalf("WriteScanline failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("abandoned writer produced %d bytes, want 0", buf.Len())
	}
}

func TestClampQuality(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, MinQuality},
		{MinQuality, MinQuality},
		{60, 60},
		{MaxQuality, MaxQuality},
		{100, MaxQuality},
	}
	for _, tt := range tests {
		if got := clampQuality(tt.in); got != tt.want {
			t.Errorf("clampQuality(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
