package shrink

// padScanline extends a scanline of width pixels in place by
// duplicating its last pixel padCount times. The buffer must have room
// for (width+padCount)*channels bytes. A padCount of zero is a no-op.
func padScanline(scan []byte, width, padCount, channels int) {
	if padCount == 0 {
		return
	}

	last := (width - 1) * channels
	for i := 1; i <= padCount; i++ {
		if channels == 3 {
			scan[last+i*3] = scan[last]
			scan[last+i*3+1] = scan[last+1]
			scan[last+i*3+2] = scan[last+2]
		} else {
			scan[last+i] = scan[last]
		}
	}
}

// mixScanline adds a padded scanline into the accumulator. The scanline
// holds outWidth*sval pixels; each consecutive run of sval input pixels
// contributes to exactly one output pixel's accumulator slot.
//
// The caller guarantees the accumulator cannot overflow: with sval <=
// MaxShrink, a full sval x sval window of 255-valued samples stays
// within uint16 range. No overflow checking happens here.
func mixScanline(scan []byte, acc []uint16, outWidth, sval, channels int) {
	if channels == 3 {
		for x := 0; x < outWidth; x++ {
			a := x * 3
			for i := 0; i < sval; i++ {
				p := (x*sval + i) * 3
				acc[a] += uint16(scan[p])
				acc[a+1] += uint16(scan[p+1])
				acc[a+2] += uint16(scan[p+2])
			}
		}
		return
	}

	for x := 0; x < outWidth; x++ {
		for i := 0; i < sval; i++ {
			acc[x] += uint16(scan[x*sval+i])
		}
	}
}

// avgBlit transfers a fully accumulated row into the output scanline,
// dividing each sum by the window area sval*sval (truncating) and
// clamping to 8-bit range.
func avgBlit(acc []uint16, out []byte, sval int) {
	div := uint32(sval) * uint32(sval)
	for i, sum := range acc {
		v := uint32(sum) / div
		if v > 255 {
			v = 255
		}
		out[i] = byte(v)
	}
}

// zeroAccumulator clears the accumulator at the start of a vertical
// window.
func zeroAccumulator(acc []uint16) {
	for i := range acc {
		acc[i] = 0
	}
}
