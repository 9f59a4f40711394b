package jpegio

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
)

// Reader pulls decoded scanlines from a JPEG stream.
//
// The image descriptor is fixed at construction and never changes.
// Errors are sticky: after the first failed read, every later read
// fails with the same error and the underlying stream is not touched
// again.
type Reader struct {
	img      image.Image
	width    int
	height   int
	channels int

	y   int // next scanline to deliver
	err error
}

// NewReader decodes the JPEG stream from r and returns a scanline
// reader for it. The whole compressed stream is consumed up front; on
// success the stream is positioned immediately after the JPEG data.
//
// Returns ErrDecode for a malformed stream, ErrDimensions when either
// dimension is outside [1, MaxDim], and ErrChannels for color formats
// other than grayscale and RGB (CMYK JPEG is rejected).
func NewReader(r io.Reader) (*Reader, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, ErrDimensions
	}

	channels := 3
	switch img.(type) {
	case *image.Gray:
		channels = 1
	case *image.YCbCr:
	case *image.CMYK:
		return nil, ErrChannels
	}

	return &Reader{
		img:      img,
		width:    width,
		height:   height,
		channels: channels,
	}, nil
}

// Width returns the image width in pixels, in [1, MaxDim].
func (r *Reader) Width() int { return r.width }

// Height returns the image height in pixels, in [1, MaxDim].
func (r *Reader) Height() int { return r.height }

// Channels returns 1 for grayscale images and 3 for RGB images.
func (r *Reader) Channels() int { return r.channels }

// ReadScanline fills buf with the next scanline, Width()*Channels()
// bytes ordered left to right. It may be called at most Height() times;
// further calls fail with ErrRead. On any failure buf is zeroed and the
// error latches.
func (r *Reader) ReadScanline(buf []byte) error {
	if r.err != nil {
		clear(buf[:r.width*r.channels])
		return r.err
	}
	if r.y >= r.height {
		r.err = ErrRead
		clear(buf[:r.width*r.channels])
		return r.err
	}

	r.copyRow(buf, r.y)
	r.y++
	return nil
}

// copyRow converts row y of the decoded image into interleaved 8-bit
// samples.
func (r *Reader) copyRow(buf []byte, y int) {
	b := r.img.Bounds()

	switch img := r.img.(type) {
	case *image.Gray:
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(buf[:r.width], img.Pix[off:off+r.width])

	case *image.YCbCr:
		for x := 0; x < r.width; x++ {
			yi := img.YOffset(b.Min.X+x, b.Min.Y+y)
			ci := img.COffset(b.Min.X+x, b.Min.Y+y)
			rr, gg, bb := color.YCbCrToRGB(img.Y[yi], img.Cb[ci], img.Cr[ci])
			buf[x*3] = rr
			buf[x*3+1] = gg
			buf[x*3+2] = bb
		}

	default:
		for x := 0; x < r.width; x++ {
			rr, gg, bb, _ := r.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			buf[x*3] = byte(rr >> 8)
			buf[x*3+1] = byte(gg >> 8)
			buf[x*3+2] = byte(bb >> 8)
		}
	}
}

// Close releases the decoded image. It is idempotent and always
// succeeds; reads after Close fail with ErrRead.
func (r *Reader) Close() error {
	if r.img != nil {
		r.img = nil
		if r.err == nil {
			r.err = ErrRead
		}
	}
	return nil
}
