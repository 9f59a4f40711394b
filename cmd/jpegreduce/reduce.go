package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrjoshuak/go-jpegshrink/shrink"
)

var reduceFlags struct {
	factor  int
	quality int

	maxLong   int
	maxShort  int
	maxWidth  int
	maxHeight int
	maxPixels int64
}

var reduceCmd = &cobra.Command{
	Use:   "reduce [flags] [INPUT [OUTPUT]]",
	Short: "Shrink a JPEG image by an integer factor",
	Long: fmt.Sprintf(`Reduce divides the width and height of a JPEG image by the reduction
factor, averaging each window of input pixels into one output pixel.
The factor must be in range [1, %d]; a factor of one re-encodes the
image at its original size. Images whose dimensions are not exact
multiples of the factor are padded by duplicating edge pixels.

INPUT and OUTPUT default to standard input and standard output. Input
metadata is not carried over and the image is fully re-encoded.

The --max-* flags bound the computed output dimensions; if any bound
would be exceeded the operation fails before writing any output.`, shrink.MaxShrink),
	Args: cobra.MaximumNArgs(2),
	RunE: runReduce,
}

func init() {
	f := reduceCmd.Flags()
	f.IntVarP(&reduceFlags.factor, "factor", "s", 1, "reduction factor")
	f.IntVarP(&reduceFlags.quality, "quality", "q", defaultQuality, "output compression quality (0-100)")
	f.IntVar(&reduceFlags.maxLong, "max-long", -1, "maximum value of the larger output dimension")
	f.IntVar(&reduceFlags.maxShort, "max-short", -1, "maximum value of the smaller output dimension")
	f.IntVar(&reduceFlags.maxWidth, "max-width", -1, "maximum output width")
	f.IntVar(&reduceFlags.maxHeight, "max-height", -1, "maximum output height")
	f.Int64Var(&reduceFlags.maxPixels, "max-pixels", -1, "maximum output pixel count")
	rootCmd.AddCommand(reduceCmd)
}

func runReduce(cmd *cobra.Command, args []string) error {
	if reduceFlags.factor < 1 || reduceFlags.factor > shrink.MaxShrink {
		return fmt.Errorf("reduction factor must be in range [1, %d]", shrink.MaxShrink)
	}
	if reduceFlags.quality < 0 || reduceFlags.quality > 100 {
		return errors.New("quality must be in range [0, 100]")
	}

	c := shrink.NewConstraints()
	c.MaxLong = reduceFlags.maxLong
	c.MaxShort = reduceFlags.maxShort
	c.MaxWidth = reduceFlags.maxWidth
	c.MaxHeight = reduceFlags.maxHeight
	c.MaxPixels = reduceFlags.maxPixels

	in, err := openInput(args)
	if err != nil {
		return err
	}
	out, err := openOutput(args)
	if err != nil {
		closeIO(in, nil)
		return err
	}
	defer closeIO(in, out)

	logVerbose("reducing by %d at quality %d", reduceFlags.factor, reduceFlags.quality)
	return shrink.Shrink(in, out, reduceFlags.factor, reduceFlags.quality, c)
}
