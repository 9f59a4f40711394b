package shrink

// Unconstrained marks a Constraints field as absent. Any negative value
// is treated the same way.
const Unconstrained = -1

// Constraints bounds the computed output dimensions of a reduction.
// Each field is either Unconstrained (any negative value) or a
// non-negative upper limit. A nil *Constraints imposes no bounds.
//
// Constraints are evaluated once, after dimension planning and strictly
// before the output encoder is opened, so a rejected request produces
// zero bytes of output.
type Constraints struct {
	// MaxLong bounds the larger of the two output dimensions. When the
	// output is square, the width is taken as the long dimension.
	MaxLong int

	// MaxShort bounds the smaller of the two output dimensions. When
	// the output is square, the height is taken as the short dimension.
	MaxShort int

	// MaxWidth and MaxHeight bound the output dimensions directly.
	MaxWidth  int
	MaxHeight int

	// MaxPixels bounds the total output pixel count, width*height.
	MaxPixels int64
}

// NewConstraints returns a Constraints value with every bound unset.
func NewConstraints() *Constraints {
	return &Constraints{
		MaxLong:   Unconstrained,
		MaxShort:  Unconstrained,
		MaxWidth:  Unconstrained,
		MaxHeight: Unconstrained,
		MaxPixels: Unconstrained,
	}
}

// allow reports whether output dimensions width x height satisfy every
// present bound. A nil receiver allows everything.
func (c *Constraints) allow(width, height int) bool {
	if c == nil {
		return true
	}

	long, short := width, height
	if height > width {
		long, short = height, width
	}

	if c.MaxLong >= 0 && long > c.MaxLong {
		return false
	}
	if c.MaxShort >= 0 && short > c.MaxShort {
		return false
	}
	if c.MaxWidth >= 0 && width > c.MaxWidth {
		return false
	}
	if c.MaxHeight >= 0 && height > c.MaxHeight {
		return false
	}
	if c.MaxPixels >= 0 && int64(width)*int64(height) > c.MaxPixels {
		return false
	}
	return true
}
