package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mrjoshuak/go-jpegshrink/shrink"
)

var echoQuality int

var echoCmd = &cobra.Command{
	Use:   "echo [flags] [INPUT [OUTPUT]]",
	Short: "Re-encode a JPEG image without scaling",
	Long: `Echo decodes a JPEG image and re-encodes it at the same dimensions.
Metadata from the input is not carried over. INPUT and OUTPUT default
to standard input and standard output.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runEcho,
}

func init() {
	echoCmd.Flags().IntVarP(&echoQuality, "quality", "q", defaultQuality, "output compression quality (0-100)")
	rootCmd.AddCommand(echoCmd)
}

func runEcho(cmd *cobra.Command, args []string) error {
	if echoQuality < 0 || echoQuality > 100 {
		return errors.New("quality must be in range [0, 100]")
	}

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

	return shrink.Shrink(in, out, 1, echoQuality, nil)
}
