// Package jpegio reads and writes JPEG images one scanline at a time.
//
// Reader exposes the image descriptor (width, height, channel count)
// after decoding the stream header and delivers scanlines in
// top-to-bottom order. Writer accepts scanlines in the same order and
// finalizes the compressed stream when the last one has been written.
// Only grayscale (one channel) and interleaved RGB (three channels)
// images are supported.
//
// The package wraps the standard library JPEG codec; the scanline
// surface exists so that streaming consumers such as the shrink package
// can process images row by row without knowing how the codec buffers
// internally.
package jpegio

import "errors"

// Codec errors.
var (
	// ErrDecode reports a malformed or unsupported JPEG stream.
	ErrDecode = errors.New("jpegio: invalid JPEG stream")

	// ErrDimensions reports image dimensions outside [1, MaxDim].
	ErrDimensions = errors.New("jpegio: image dimensions out of range")

	// ErrChannels reports a color format that is neither grayscale nor
	// RGB.
	ErrChannels = errors.New("jpegio: unsupported color channel count")

	// ErrRead reports a failed scanline read. Once a Reader returns
	// any error, every later read fails the same way.
	ErrRead = errors.New("jpegio: scanline read failed")

	// ErrScanlineRange reports a write past the declared image height.
	ErrScanlineRange = errors.New("jpegio: scanline out of range")
)

// MaxDim is the maximum width or height in pixels of JPEG images that
// are read and written.
const MaxDim = 32000

// Output compression quality bounds. Quality values passed to NewWriter
// are clamped to this range.
const (
	MinQuality = 25
	MaxQuality = 90
)

func clampQuality(q int) int {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}
