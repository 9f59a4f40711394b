// Package jp2io exposes JPEG 2000 images through the scanline
// contracts used by the shrink package.
//
// The underlying codec decodes and encodes whole images; Reader and
// Writer put the streaming surface in front of it so JPEG 2000 can be
// swapped in wherever a scanline codec is expected. Encoding is always
// lossless, so quality hints are ignored. The codec carries samples as
// 16-bit components; Writer widens 8-bit scanlines on the way in and
// Reader takes the high byte on the way out, so a round trip returns
// the original samples.
package jp2io

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	jpeg2000 "github.com/mrjoshuak/go-jpeg2000"

	"github.com/mrjoshuak/go-jpegshrink/imageio"
)

// Codec errors.
var (
	// ErrDecode reports a malformed or unsupported JPEG 2000 stream.
	ErrDecode = errors.New("jp2io: invalid JPEG 2000 stream")
)

// NewReader decodes the JPEG 2000 codestream from r and returns a
// scanline reader over the result.
func NewReader(r io.Reader) (*imageio.Reader, error) {
	img, err := jpeg2000.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return imageio.NewReader(img)
}

// Writer assembles scanlines and encodes them as a lossless JPEG 2000
// codestream when the last one has been written.
type Writer struct {
	w      io.Writer
	buf    *imageio.Writer
	closed bool
	err    error
}

// NewWriter returns a scanline writer that encodes a width x height
// image with the given channel count to w as a raw JPEG 2000
// codestream.
func NewWriter(w io.Writer, width, height, channels int) (*Writer, error) {
	buf, err := imageio.NewWriter(width, height, channels)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, buf: buf}, nil
}

// WriteScanline appends one scanline; the final one triggers encoding.
func (w *Writer) WriteScanline(scan []byte) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		w.err = imageio.ErrScanlineRange
		return w.err
	}

	if err := w.buf.WriteScanline(scan); err != nil {
		w.err = err
		return w.err
	}
	if w.buf.Complete() {
		w.err = w.encode()
		if w.err != nil {
			return w.err
		}
		w.closed = true
	}
	return nil
}

func (w *Writer) encode() error {
	opts := &jpeg2000.Options{
		Format:   jpeg2000.FormatJ2K,
		Lossless: true,
	}
	if err := jpeg2000.Encode(w.w, deepen(w.buf.Image()), opts); err != nil {
		return fmt.Errorf("jp2io: encode: %w", err)
	}
	return nil
}

// deepen widens 8-bit samples to the 16-bit components the codec
// operates on. Each byte is replicated into both halves, so the high
// byte of a lossless round trip is the original sample.
func deepen(img image.Image) image.Image {
	b := img.Bounds()
	switch src := img.(type) {
	case *image.Gray:
		dst := image.NewGray16(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.SetGray16(x, y, color.Gray16{Y: uint16(src.GrayAt(x, y).Y) * 0x101})
			}
		}
		return dst
	case *image.NRGBA:
		dst := image.NewNRGBA64(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := src.NRGBAAt(x, y)
				dst.SetNRGBA64(x, y, color.NRGBA64{
					R: uint16(c.R) * 0x101,
					G: uint16(c.G) * 0x101,
					B: uint16(c.B) * 0x101,
					A: uint16(c.A) * 0x101,
				})
			}
		}
		return dst
	}
	return img
}

// Close releases the writer. It is idempotent; closing before all
// scanlines are written abandons the image without producing output.
func (w *Writer) Close() error {
	w.closed = true
	return nil
}
