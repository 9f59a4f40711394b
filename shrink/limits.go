package shrink

// Dimension and scaling limits.
const (
	// MaxDim is the maximum width or height in pixels of images that
	// can be reduced. The bound keeps width*height*channels arithmetic
	// well inside the int32 range.
	MaxDim = 32000

	// MaxShrink is the maximum reduction factor. A factor of sixteen
	// divides both dimensions by sixteen, with duplication padding used
	// to round the input up to 16-pixel boundaries.
	//
	// MaxShrink must be chosen so that mixing a full MaxShrink x
	// MaxShrink window of 255-valued samples never overflows the
	// 16-bit accumulator: MaxShrink*MaxShrink*255 <= 65535.
	MaxShrink = 16
)

// Compile-time guard for the accumulator overflow invariant above.
// If MaxShrink is ever raised past the uint16 accumulator's capacity,
// this constant conversion stops compiling.
const _ = uint16(MaxShrink * MaxShrink * 255)

func validDim(n int) bool {
	return n >= 1 && n <= MaxDim
}

func validChannels(n int) bool {
	return n == 1 || n == 3
}
