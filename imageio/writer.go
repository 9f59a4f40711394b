package imageio

import "image"

// Writer collects scanlines into an in-memory image for consumers that
// encode whole images at once.
type Writer struct {
	gray *image.Gray
	rgb  *image.NRGBA

	width  int
	height int
	rows   int
}

// NewWriter returns a scanline writer assembling a width x height image
// with the given channel count (1 for grayscale, 3 for RGB).
func NewWriter(width, height, channels int) (*Writer, error) {
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, ErrDimensions
	}
	if channels != 1 && channels != 3 {
		return nil, ErrChannels
	}

	w := &Writer{width: width, height: height}
	if channels == 1 {
		w.gray = image.NewGray(image.Rect(0, 0, width, height))
	} else {
		w.rgb = image.NewNRGBA(image.Rect(0, 0, width, height))
	}
	return w, nil
}

// WriteScanline appends one scanline of width*channels bytes. Writing
// more than height scanlines fails with ErrScanlineRange.
func (w *Writer) WriteScanline(scan []byte) error {
	if w.rows >= w.height {
		return ErrScanlineRange
	}

	if w.gray != nil {
		copy(w.gray.Pix[w.rows*w.gray.Stride:], scan[:w.width])
	} else {
		row := w.rgb.Pix[w.rows*w.rgb.Stride:]
		for x := 0; x < w.width; x++ {
			row[x*4] = scan[x*3]
			row[x*4+1] = scan[x*3+1]
			row[x*4+2] = scan[x*3+2]
			row[x*4+3] = 0xff
		}
	}
	w.rows++
	return nil
}

// Complete reports whether all height scanlines have been written.
func (w *Writer) Complete() bool { return w.rows == w.height }

// Image returns the assembled image. Rows not yet written are zero.
func (w *Writer) Image() image.Image {
	if w.gray != nil {
		return w.gray
	}
	return w.rgb
}
