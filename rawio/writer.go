package rawio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// Writer streams scanlines into a RAWS container.
//
// WriteScanline must be called exactly height times in top-to-bottom
// order; the final call appends the payload digest and closes the zstd
// frame. Abandoning the writer early leaves a truncated stream.
type Writer struct {
	enc    *zstd.Encoder
	digest *xxhash.Digest

	width    int
	height   int
	channels int

	rows   int
	closed bool
	err    error
}

// NewWriter writes a RAWS header for a width x height image with the
// given channel count to w and returns a scanline writer for the
// payload.
func NewWriter(w io.Writer, width, height, channels int) (*Writer, error) {
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, ErrDimensions
	}
	if channels != 1 && channels != 3 {
		return nil, ErrChannels
	}

	var hdr [headerSize]byte
	copy(hdr[:4], rawsMagic)
	hdr[4] = rawsVersion
	binary.BigEndian.PutUint32(hdr[5:9], uint32(width))
	binary.BigEndian.PutUint32(hdr[9:13], uint32(height))
	hdr[13] = byte(channels)
	if _, err := w.Write(hdr[:]); err != nil {
		return nil, fmt.Errorf("rawio: write header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("rawio: zstd: %w", err)
	}

	return &Writer{
		enc:      enc,
		digest:   xxhash.New(),
		width:    width,
		height:   height,
		channels: channels,
	}, nil
}

// WriteScanline appends one scanline of width*channels bytes. The
// height-th call finalizes the stream; calls beyond that fail with
// ErrScanlineRange.
func (w *Writer) WriteScanline(scan []byte) error {
	if w.err != nil {
		return w.err
	}
	if w.closed || w.rows >= w.height {
		w.err = ErrScanlineRange
		return w.err
	}

	n := w.width * w.channels
	if _, err := w.enc.Write(scan[:n]); err != nil {
		w.err = fmt.Errorf("rawio: write scanline: %w", err)
		return w.err
	}
	w.digest.Write(scan[:n])

	w.rows++
	if w.rows == w.height {
		w.err = w.finish()
		if w.err != nil {
			return w.err
		}
		w.closed = true
	}
	return nil
}

func (w *Writer) finish() error {
	var sum [digestSize]byte
	binary.BigEndian.PutUint64(sum[:], w.digest.Sum64())
	if _, err := w.enc.Write(sum[:]); err != nil {
		return fmt.Errorf("rawio: write digest: %w", err)
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("rawio: close frame: %w", err)
	}
	return nil
}

// Close releases the zstd encoder. It is idempotent and does not close
// the underlying io.Writer. Closing before all scanlines are written
// leaves an incomplete stream that Reader will reject.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.enc.Close()
	return nil
}
