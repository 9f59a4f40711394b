package jpegshrink_test

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mrjoshuak/go-jpegshrink/rawio"
	"github.com/mrjoshuak/go-jpegshrink/shrink"
)

// Example_shrinkFile reduces a JPEG file to a quarter of its width and
// height.
func Example_shrinkFile() {
	in, err := os.Open("photo.jpeg")
	if err != nil {
		fmt.Println("Error opening input:", err)
		return
	}
	defer in.Close()

	out, err := os.Create("photo_small.jpeg")
	if err != nil {
		fmt.Println("Error opening output:", err)
		return
	}
	defer out.Close()

	if err := shrink.Shrink(in, out, 4, 85, nil); err != nil {
		fmt.Println("Error shrinking:", err)
	}
}

// Example_constraints rejects outputs that would still be too large.
func Example_constraints() {
	c := shrink.NewConstraints()
	c.MaxLong = 1920
	c.MaxPixels = 2_000_000

	in, err := os.Open("photo.jpeg")
	if err != nil {
		fmt.Println("Error opening input:", err)
		return
	}
	defer in.Close()

	var out bytes.Buffer
	switch err := shrink.Shrink(in, &out, 2, 85, c); err {
	case nil:
		// out holds the reduced image.
	case shrink.ErrConstraints:
		fmt.Println("still too large at this factor")
	default:
		fmt.Println("Error shrinking:", err)
	}
}

// Example_customTransport runs the reducer over the RAWS scanline
// container instead of JPEG, for a byte-exact pipeline.
func Example_customTransport() {
	// Write a tiny 4x4 grayscale image into a RAWS stream.
	var stream bytes.Buffer
	w, _ := rawio.NewWriter(&stream, 4, 4, 1)
	for y := 0; y < 4; y++ {
		w.WriteScanline([]byte{10, 20, 30, 40})
	}

	// Reduce it by two.
	src, _ := rawio.NewReader(&stream)
	defer src.Close()

	var reduced bytes.Buffer
	open := func(width, height, channels, quality int) (shrink.ScanWriter, error) {
		return rawio.NewWriter(&reduced, width, height, channels)
	}
	if err := shrink.Reduce(src, open, 2, 0, nil); err != nil {
		fmt.Println("Error reducing:", err)
		return
	}

	out, _ := rawio.NewReader(&reduced)
	defer out.Close()
	scan := make([]byte, out.Width())
	for y := 0; y < out.Height(); y++ {
		out.ReadScanline(scan)
		fmt.Println(scan)
	}
	// Output:
	// [15 35]
	// [15 35]
}
