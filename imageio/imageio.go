// Package imageio adapts in-memory images to the scanline contracts
// used by the shrink package.
//
// Reader walks any image.Image top to bottom, converting each row to
// interleaved 8-bit samples (one channel for grayscale models, three
// for everything else; alpha is dropped). Writer collects scanlines
// back into an image.Image for whole-image encoders. Decode recognizes
// every registered format; importing this package registers PNG, GIF,
// JPEG, BMP and TIFF.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Adapter errors.
var (
	// ErrDecode reports an input stream in no registered format.
	ErrDecode = errors.New("imageio: cannot decode image")

	// ErrDimensions reports image dimensions outside [1, MaxDim].
	ErrDimensions = errors.New("imageio: image dimensions out of range")

	// ErrChannels reports a channel count other than 1 or 3.
	ErrChannels = errors.New("imageio: unsupported channel count")

	// ErrRead reports a scanline read past the image bottom.
	ErrRead = errors.New("imageio: scanline read failed")

	// ErrScanlineRange reports a write past the declared image height.
	ErrScanlineRange = errors.New("imageio: scanline out of range")
)

// MaxDim is the maximum width or height in pixels of adapted images.
const MaxDim = 32000

// Reader delivers the rows of an image.Image as interleaved scanlines.
type Reader struct {
	img      image.Image
	width    int
	height   int
	channels int

	y   int
	err error
}

// NewReader returns a scanline reader over img. The channel count is 1
// when the image's color model is grayscale and 3 otherwise.
func NewReader(img image.Image) (*Reader, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, ErrDimensions
	}

	channels := 3
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		channels = 1
	}

	return &Reader{
		img:      img,
		width:    width,
		height:   height,
		channels: channels,
	}, nil
}

// Decode reads an image in any registered format from r and returns a
// scanline reader over it.
func Decode(r io.Reader) (*Reader, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return NewReader(img)
}

// Width returns the image width in pixels.
func (r *Reader) Width() int { return r.width }

// Height returns the image height in pixels.
func (r *Reader) Height() int { return r.height }

// Channels returns 1 for grayscale images and 3 otherwise.
func (r *Reader) Channels() int { return r.channels }

// ReadScanline fills buf with the next row, width*channels bytes. The
// error latches after the first failure.
func (r *Reader) ReadScanline(buf []byte) error {
	n := r.width * r.channels
	if r.err != nil {
		clear(buf[:n])
		return r.err
	}
	if r.y >= r.height {
		r.err = ErrRead
		clear(buf[:n])
		return r.err
	}

	b := r.img.Bounds()
	y := b.Min.Y + r.y
	if r.channels == 1 {
		for x := 0; x < r.width; x++ {
			g := color.GrayModel.Convert(r.img.At(b.Min.X+x, y)).(color.Gray)
			buf[x] = g.Y
		}
	} else {
		for x := 0; x < r.width; x++ {
			rr, gg, bb, _ := r.img.At(b.Min.X+x, y).RGBA()
			buf[x*3] = byte(rr >> 8)
			buf[x*3+1] = byte(gg >> 8)
			buf[x*3+2] = byte(bb >> 8)
		}
	}
	r.y++
	return nil
}
