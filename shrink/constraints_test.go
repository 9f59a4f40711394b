package shrink

import "testing"

func TestConstraintsNilAllowsEverything(t *testing.T) {
	var c *Constraints
	if !c.allow(MaxDim, MaxDim) {
		t.Error("nil constraints rejected maximum dimensions")
	}
}

func TestConstraintsAllUnsetAllowsEverything(t *testing.T) {
	c := NewConstraints()
	if !c.allow(MaxDim, MaxDim) {
		t.Error("unset constraints rejected maximum dimensions")
	}
	if !c.allow(1, 1) {
		t.Error("unset constraints rejected 1x1")
	}
}

func TestConstraintsBounds(t *testing.T) {
	tests := []struct {
		name          string
		set           func(*Constraints)
		width, height int
		allow         bool
	}{
		{"long within", func(c *Constraints) { c.MaxLong = 100 }, 100, 50, true},
		{"long exceeded by width", func(c *Constraints) { c.MaxLong = 99 }, 100, 50, false},
		{"long exceeded by height", func(c *Constraints) { c.MaxLong = 99 }, 50, 100, false},
		{"short within", func(c *Constraints) { c.MaxShort = 50 }, 100, 50, true},
		{"short exceeded", func(c *Constraints) { c.MaxShort = 49 }, 100, 50, false},
		{"width bound ignores height", func(c *Constraints) { c.MaxWidth = 60 }, 50, 100, true},
		{"width exceeded", func(c *Constraints) { c.MaxWidth = 49 }, 50, 100, false},
		{"height bound ignores width", func(c *Constraints) { c.MaxHeight = 60 }, 100, 50, true},
		{"height exceeded", func(c *Constraints) { c.MaxHeight = 49 }, 100, 50, false},
		{"pixels within", func(c *Constraints) { c.MaxPixels = 5000 }, 100, 50, true},
		{"pixels exceeded", func(c *Constraints) { c.MaxPixels = 4999 }, 100, 50, false},
		{"zero bound", func(c *Constraints) { c.MaxWidth = 0 }, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConstraints()
			tt.set(c)
			if got := c.allow(tt.width, tt.height); got != tt.allow {
				t.Errorf("allow(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.allow)
			}
		})
	}
}

func TestConstraintsSquareTies(t *testing.T) {
	// For a square output the width is the long dimension and the
	// height the short one.
	c := NewConstraints()
	c.MaxLong = 10
	if !c.allow(10, 10) {
		t.Error("square at the long bound was rejected")
	}

	c = NewConstraints()
	c.MaxShort = 9
	if c.allow(10, 10) {
		t.Error("square above the short bound was allowed")
	}
}

func TestConstraintsLargePixelCounts(t *testing.T) {
	// MaxDim*MaxDim overflows int32; the pixel bound must be evaluated
	// in 64 bits.
	c := NewConstraints()
	c.MaxPixels = int64(MaxDim)*int64(MaxDim) - 1
	if c.allow(MaxDim, MaxDim) {
		t.Error("pixel bound lost precision at maximum dimensions")
	}
	c.MaxPixels = int64(MaxDim) * int64(MaxDim)
	if !c.allow(MaxDim, MaxDim) {
		t.Error("pixel bound rejected an exact fit")
	}
}
