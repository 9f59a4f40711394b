package rawio

import (
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// Reader streams scanlines out of a RAWS container.
//
// The payload digest is verified when the last scanline is delivered;
// a mismatch surfaces as ErrChecksum on that final read. Errors are
// sticky.
type Reader struct {
	dec    *zstd.Decoder
	digest *xxhash.Digest

	width    int
	height   int
	channels int

	y   int
	err error
}

// NewReader parses a RAWS header from r and returns a scanline reader
// for the payload.
func NewReader(r io.Reader) (*Reader, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, ErrFormat
	}
	if string(hdr[:4]) != rawsMagic || hdr[4] != rawsVersion {
		return nil, ErrFormat
	}

	width := int(binary.BigEndian.Uint32(hdr[5:9]))
	height := int(binary.BigEndian.Uint32(hdr[9:13]))
	channels := int(hdr[13])
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, ErrDimensions
	}
	if channels != 1 && channels != 3 {
		return nil, ErrChannels
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, ErrFormat
	}

	return &Reader{
		dec:      dec,
		digest:   xxhash.New(),
		width:    width,
		height:   height,
		channels: channels,
	}, nil
}

// Width returns the image width in pixels, in [1, MaxDim].
func (r *Reader) Width() int { return r.width }

// Height returns the image height in pixels, in [1, MaxDim].
func (r *Reader) Height() int { return r.height }

// Channels returns 1 for grayscale data and 3 for RGB data.
func (r *Reader) Channels() int { return r.channels }

// ReadScanline fills buf with the next scanline, width*channels bytes.
// It may be called at most height times; the final call verifies the
// payload digest. On any failure buf is zeroed and the error latches.
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

	if _, err := io.ReadFull(r.dec, buf[:n]); err != nil {
		r.err = ErrRead
		clear(buf[:n])
		return r.err
	}
	r.digest.Write(buf[:n])
	r.y++

	if r.y == r.height {
		if err := r.verify(); err != nil {
			r.err = err
			clear(buf[:n])
			return r.err
		}
	}
	return nil
}

func (r *Reader) verify() error {
	var sum [digestSize]byte
	if _, err := io.ReadFull(r.dec, sum[:]); err != nil {
		return ErrRead
	}
	if binary.BigEndian.Uint64(sum[:]) != r.digest.Sum64() {
		return ErrChecksum
	}
	return nil
}

// Close releases the zstd decoder. It is idempotent; reads after Close
// fail with ErrRead.
func (r *Reader) Close() error {
	if r.dec != nil {
		r.dec.Close()
		r.dec = nil
		if r.err == nil {
			r.err = ErrRead
		}
	}
	return nil
}
