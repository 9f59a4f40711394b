// Package shrink reduces raster images by an integer factor using a
// streaming box filter.
//
// The reducer consumes one decoded scanline at a time, accumulates each
// sval x sval window of input pixels into a per-output-pixel sum, and
// emits one averaged output scanline per vertical window. Memory usage
// is proportional to the output width, independent of image height.
// Images whose dimensions are not exact multiples of the reduction
// factor are padded by duplicating the last pixel of each scanline and
// the last scanline.
//
// Scanline decoding and encoding are external: any type satisfying
// ScanReader can feed the reducer and any ScanWriter can receive its
// output. Shrink wires the reducer to the jpegio codec for the common
// JPEG-to-JPEG case.
package shrink

import (
	"errors"
	"io"

	"github.com/mrjoshuak/go-jpegshrink/jpegio"
)

// Reduction errors.
var (
	// ErrConstraints reports that the computed output dimensions
	// violate the caller's Constraints. It is always distinct from
	// decoder and encoder errors and is returned before any output
	// byte is written.
	ErrConstraints = errors.New("shrink: output constraints violated")

	// ErrFactor reports a reduction factor outside [1, MaxShrink].
	ErrFactor = errors.New("shrink: reduction factor out of range")

	// ErrDimensions reports source dimensions outside [1, MaxDim].
	ErrDimensions = errors.New("shrink: image dimensions out of range")

	// ErrChannels reports a channel count other than 1 or 3.
	ErrChannels = errors.New("shrink: unsupported channel count")
)

// ScanReader provides decoded image scanlines in top-to-bottom order.
//
// Width, Height and Channels describe the image and must not change
// over the reader's lifetime. ReadScanline fills exactly
// Width()*Channels() bytes of buf with the next scanline, or returns an
// error; after the first error every later call must fail as well
// without touching the underlying stream further.
type ScanReader interface {
	Width() int
	Height() int
	Channels() int
	ReadScanline(buf []byte) error
}

// ScanWriter consumes encoded-image scanlines in top-to-bottom order.
// WriteScanline must be called exactly once per output row; the final
// call finalizes the underlying stream. Writers that hold resources
// should also implement io.Closer; Reduce closes the writer it opened
// on every exit path.
type ScanWriter interface {
	WriteScanline(scan []byte) error
}

// WriterOpener opens a scanline encoder once the output geometry is
// known. Quality is a pass-through hint in [0, 100]; encoders are free
// to clamp or ignore it.
type WriterOpener func(width, height, channels, quality int) (ScanWriter, error)

// Reduce streams src through the box filter into a writer obtained from
// open, reducing both dimensions by sval. sval must be in
// [1, MaxShrink]; sval of one copies the image unmodified.
//
// The output dimensions are validated against c before open is called,
// so a constraint violation produces no output at all and is reported
// as ErrConstraints. Any other error comes from the reader or writer
// and aborts the stream at the failing row. If the opened writer
// implements io.Closer it is closed exactly once regardless of the exit
// path.
func Reduce(src ScanReader, open WriterOpener, sval, quality int, c *Constraints) (err error) {
	if sval < 1 || sval > MaxShrink {
		return ErrFactor
	}

	width, height, channels := src.Width(), src.Height(), src.Channels()
	if !validDim(width) || !validDim(height) {
		return ErrDimensions
	}
	if !validChannels(channels) {
		return ErrChannels
	}

	p := planDimensions(width, height, sval)
	if !c.allow(p.outWidth, p.outHeight) {
		return ErrConstraints
	}

	dst, err := open(p.outWidth, p.outHeight, channels, quality)
	if err != nil {
		return err
	}
	if cl, ok := dst.(io.Closer); ok {
		defer func() {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}()
	}

	if sval == 1 {
		return copyScanlines(src, dst, width, height, channels)
	}
	return reduceScanlines(src, dst, p, height, width, sval, channels)
}

// copyScanlines is the identity fast path: no padding, accumulation or
// averaging, numerically identical to the general path with sval of
// one.
func copyScanlines(src ScanReader, dst ScanWriter, width, height, channels int) error {
	scan := make([]byte, width*channels)
	for y := 0; y < height; y++ {
		if err := src.ReadScanline(scan); err != nil {
			return err
		}
		if err := dst.WriteScanline(scan); err != nil {
			return err
		}
	}
	return nil
}

// reduceScanlines runs the general path over the padded Y space. Rows
// at or beyond the true image height reuse the scanline buffer
// unchanged: the last real scanline, already horizontally padded,
// stands in for the missing rows.
func reduceScanlines(src ScanReader, dst ScanWriter, p plan, height, width, sval, channels int) error {
	scan := make([]byte, p.outWidth*sval*channels)
	acc := make([]uint16, p.outWidth*channels)
	out := make([]byte, p.outWidth*channels)

	for y := 0; y < p.padHeight; y++ {
		if y < height {
			if err := src.ReadScanline(scan[:width*channels]); err != nil {
				return err
			}
			padScanline(scan, width, p.padCount, channels)
		}

		if y%sval == 0 {
			zeroAccumulator(acc)
		}
		mixScanline(scan, acc, p.outWidth, sval, channels)

		if y%sval == sval-1 {
			avgBlit(acc, out, sval)
			if err := dst.WriteScanline(out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Shrink reduces a JPEG stream by sval and writes the result as a JPEG
// stream, the scanline-at-a-time equivalent of decoding, box-filtering
// and re-encoding the whole image. Grayscale input produces grayscale
// output and RGB input produces RGB output. quality is the output
// compression quality in [0, 100]; see jpegio.NewWriter for how it is
// clamped. Metadata from the input stream is not carried over.
//
// On success out contains a complete JPEG image. On failure out may
// hold a truncated stream, which the caller should discard.
func Shrink(in io.Reader, out io.Writer, sval, quality int, c *Constraints) error {
	r, err := jpegio.NewReader(in)
	if err != nil {
		return err
	}
	defer r.Close()

	open := func(width, height, channels, q int) (ScanWriter, error) {
		return jpegio.NewWriter(out, width, height, channels, q)
	}
	return Reduce(r, open, sval, quality, c)
}
