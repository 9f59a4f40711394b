package shrink

// plan holds the precomputed geometry for one reduction pass.
//
// outWidth and outHeight are the output dimensions, ceil(in/sval).
// padCount is the number of duplicated pixels appended to each scanline
// so that the padded width outWidth*sval is an exact multiple of sval.
// padHeight is the padded input height outHeight*sval; the rows between
// the true input height and padHeight are synthetic duplicates of the
// last real scanline.
type plan struct {
	outWidth  int
	outHeight int
	padCount  int
	padHeight int
}

// planDimensions computes the output geometry for reducing a width x
// height image by sval. Inputs must already be validated; this is pure
// arithmetic with no failure modes.
//
// Invariant: outWidth*sval >= width and outHeight*sval >= height.
func planDimensions(width, height, sval int) plan {
	if sval <= 1 {
		// Identity: no padding in either dimension.
		return plan{
			outWidth:  width,
			outHeight: height,
			padHeight: height,
		}
	}

	outW := width / sval
	if width%sval != 0 {
		outW++
	}
	outH := height / sval
	if height%sval != 0 {
		outH++
	}

	return plan{
		outWidth:  outW,
		outHeight: outH,
		padCount:  outW*sval - width,
		padHeight: outH * sval,
	}
}
