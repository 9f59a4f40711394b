package jpegio

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
)

// Writer assembles scanlines into a JPEG stream.
//
// WriteScanline must be called exactly height times in top-to-bottom
// order; the final call encodes and flushes the compressed stream. If
// the writer is abandoned before all scanlines are written, nothing is
// written to the output.
type Writer struct {
	w       io.Writer
	width   int
	height  int
	quality int

	gray *image.Gray  // one-channel output
	rgb  *image.NRGBA // three-channel output

	rows   int
	closed bool
	err    error
}

// NewWriter returns a scanline writer that encodes a width x height
// image with the given channel count (1 for grayscale, 3 for RGB) to w.
// quality is clamped to [MinQuality, MaxQuality]; higher values mean
// better image quality and less compression.
func NewWriter(w io.Writer, width, height, channels, quality int) (*Writer, error) {
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, ErrDimensions
	}
	if channels != 1 && channels != 3 {
		return nil, ErrChannels
	}

	jw := &Writer{
		w:       w,
		width:   width,
		height:  height,
		quality: clampQuality(quality),
	}
	if channels == 1 {
		jw.gray = image.NewGray(image.Rect(0, 0, width, height))
	} else {
		jw.rgb = image.NewNRGBA(image.Rect(0, 0, width, height))
	}
	return jw, nil
}

// WriteScanline appends one scanline, width*channels bytes ordered left
// to right. The height-th call finalizes the stream; calls beyond that
// fail with ErrScanlineRange.
func (w *Writer) WriteScanline(scan []byte) error {
	if w.err != nil {
		return w.err
	}
	if w.closed || w.rows >= w.height {
		w.err = ErrScanlineRange
		return w.err
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
	if w.rows == w.height {
		w.err = w.encode()
		if w.err != nil {
			return w.err
		}
		w.closed = true
	}
	return nil
}

func (w *Writer) encode() error {
	var img image.Image = w.rgb
	if w.gray != nil {
		img = w.gray
	}
	if err := jpeg.Encode(w.w, img, &jpeg.Options{Quality: w.quality}); err != nil {
		return fmt.Errorf("jpegio: encode: %w", err)
	}
	return nil
}

// Close releases the writer. It is idempotent and does not close the
// underlying io.Writer. Closing before all scanlines have been written
// abandons the image without producing output.
func (w *Writer) Close() error {
	if !w.closed {
		w.closed = true
		w.gray = nil
		w.rgb = nil
	}
	return nil
}
