package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/mrjoshuak/go-jpegshrink/imageio"
	"github.com/mrjoshuak/go-jpegshrink/jp2io"
	"github.com/mrjoshuak/go-jpegshrink/jpegio"
	"github.com/mrjoshuak/go-jpegshrink/rawio"
	"github.com/mrjoshuak/go-jpegshrink/shrink"
)

var convertFlags struct {
	from    string
	to      string
	quality int
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] [INPUT [OUTPUT]]",
	Short: "Transcode an image between scanline formats",
	Long: `Convert streams an image from one format to another without scaling.

Input formats: auto (JPEG, PNG, GIF, BMP, TIFF by content sniffing),
raws (the RAWS scanline container) and j2k (JPEG 2000 codestream).
Output formats: jpeg, raws, j2k and bmp.

INPUT and OUTPUT default to standard input and standard output.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVar(&convertFlags.from, "from", "auto", "input format (auto, raws, j2k)")
	f.StringVar(&convertFlags.to, "to", "jpeg", "output format (jpeg, raws, j2k, bmp)")
	f.IntVarP(&convertFlags.quality, "quality", "q", defaultQuality, "output compression quality (0-100)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
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

	src, err := openConvertReader(in, convertFlags.from)
	if err != nil {
		return err
	}
	if cl, ok := src.(io.Closer); ok {
		defer cl.Close()
	}

	open, err := convertOpener(out, convertFlags.to)
	if err != nil {
		return err
	}

	logVerbose("converting %s to %s", convertFlags.from, convertFlags.to)
	return shrink.Reduce(src, open, 1, convertFlags.quality, nil)
}

func openConvertReader(in io.Reader, from string) (shrink.ScanReader, error) {
	switch from {
	case "auto":
		return imageio.Decode(in)
	case "raws":
		return rawio.NewReader(in)
	case "j2k":
		return jp2io.NewReader(in)
	}
	return nil, fmt.Errorf("unknown input format %q", from)
}

func convertOpener(out io.Writer, to string) (shrink.WriterOpener, error) {
	switch to {
	case "jpeg":
		return func(w, h, ch, q int) (shrink.ScanWriter, error) {
			return jpegio.NewWriter(out, w, h, ch, q)
		}, nil
	case "raws":
		return func(w, h, ch, q int) (shrink.ScanWriter, error) {
			return rawio.NewWriter(out, w, h, ch)
		}, nil
	case "j2k":
		return func(w, h, ch, q int) (shrink.ScanWriter, error) {
			return jp2io.NewWriter(out, w, h, ch)
		}, nil
	case "bmp":
		return func(w, h, ch, q int) (shrink.ScanWriter, error) {
			return newBMPWriter(out, w, h, ch)
		}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", to)
}

// bmpWriter collects scanlines and encodes them as BMP once the image
// is complete.
type bmpWriter struct {
	w   io.Writer
	buf *imageio.Writer
}

func newBMPWriter(w io.Writer, width, height, channels int) (*bmpWriter, error) {
	buf, err := imageio.NewWriter(width, height, channels)
	if err != nil {
		return nil, err
	}
	return &bmpWriter{w: w, buf: buf}, nil
}

func (b *bmpWriter) WriteScanline(scan []byte) error {
	if err := b.buf.WriteScanline(scan); err != nil {
		return err
	}
	if b.buf.Complete() {
		return bmp.Encode(b.w, b.buf.Image())
	}
	return nil
}
