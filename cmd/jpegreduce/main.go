// jpegreduce shrinks, re-encodes and inspects images through a
// streaming scanline pipeline.
//
// The reduce subcommand divides a JPEG image's width and height by an
// integer factor using a box filter, echo re-encodes without scaling,
// info prints an image descriptor and payload hash, and convert
// transcodes between the supported scanline formats.
//
// Exit codes:
//
//	0: success
//	1: operation failed
//	2: usage error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// defaultQuality is the output compression quality used when no -q
// flag is given.
const defaultQuality = 90

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "jpegreduce",
	Short: "Streaming box-filter image reducer",
	Long: `jpegreduce reads images one scanline at a time and writes them back
out one scanline at a time, so even very large images are processed in
memory proportional to a single row.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jpegreduce: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// logVerbose prints a message to stderr only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[jpegreduce] "+format+"\n", args...)
	}
}

// openInput returns the file named by args[0], or stdin when absent.
func openInput(args []string) (*os.File, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, nil
	}
	return os.Open(args[0])
}

// openOutput returns the file named by args[1], or stdout when absent.
func openOutput(args []string) (*os.File, error) {
	if len(args) < 2 || args[1] == "-" {
		return os.Stdout, nil
	}
	return os.Create(args[1])
}

// closeIO closes in and out unless they are the standard streams.
func closeIO(in, out *os.File) {
	if in != nil && in != os.Stdin {
		in.Close()
	}
	if out != nil && out != os.Stdout {
		out.Close()
	}
}
