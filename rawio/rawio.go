// Package rawio reads and writes the RAWS container, a minimal
// streaming format for raw 8-bit scanline data.
//
// A RAWS stream is a fixed header (magic "RAWS", format version, image
// width, height and channel count) followed by a single zstd frame
// holding the scanlines top to bottom and, still inside the frame, a
// 64-bit xxHash digest of the uncompressed samples. Both reading and
// writing are scanline-at-a-time with memory independent of image
// height, which makes the format a byte-exact intermediate for
// streaming pipelines where JPEG's lossy round trip is unwanted.
package rawio

import "errors"

// Container errors.
var (
	// ErrFormat reports a stream that is not RAWS or has an unknown
	// version.
	ErrFormat = errors.New("rawio: not a RAWS stream")

	// ErrDimensions reports header dimensions outside [1, MaxDim].
	ErrDimensions = errors.New("rawio: image dimensions out of range")

	// ErrChannels reports a channel count other than 1 or 3.
	ErrChannels = errors.New("rawio: unsupported channel count")

	// ErrRead reports a failed or truncated scanline read. The error
	// latches: later reads on the same Reader fail the same way.
	ErrRead = errors.New("rawio: scanline read failed")

	// ErrChecksum reports a payload digest mismatch detected after the
	// last scanline.
	ErrChecksum = errors.New("rawio: payload checksum mismatch")

	// ErrScanlineRange reports a write past the declared image height.
	ErrScanlineRange = errors.New("rawio: scanline out of range")
)

// MaxDim is the maximum width or height accepted in a RAWS header.
const MaxDim = 32000

const (
	rawsMagic   = "RAWS"
	rawsVersion = 1

	// magic + version + width + height + channels
	headerSize = 4 + 1 + 4 + 4 + 1

	digestSize = 8
)
