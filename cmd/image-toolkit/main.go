package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dhodgson615/Image-Processing-Toolkit/internal/imageio"
	"github.com/dhodgson615/Image-Processing-Toolkit/internal/pipeline"
	"github.com/dhodgson615/Image-Processing-Toolkit/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Logging goes to stderr; in serve mode stdout carries protocol
	// traffic.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-toolkit %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "serve":
			srv := server.New()
			if err := srv.Run(); err != nil {
				log.Fatalf("Server error: %v", err)
			}
			return
		}
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("image-toolkit - pixel-wise image thresholding and adjustment")
	fmt.Println()
	fmt.Println("Usage: image-toolkit [flags] [input [output [format]]]")
	fmt.Println("       image-toolkit serve")
	fmt.Println()
	fmt.Println("With no arguments, reads img.png and writes an auto-numbered")
	fmt.Println("outputN.png using the default binary threshold of 0.53.")
	fmt.Println()
	fmt.Println("The serve subcommand runs a JSON-RPC tool server over stdin/stdout")
	fmt.Println("exposing the same pipeline plus analysis helpers.")
	fmt.Println()
	fmt.Println("Flags:")
	fs := newFlagSet(&cliOptions{})
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
}

// cliOptions is the flag-populated configuration source: one flag per
// pipeline.Config field plus the I/O paths.
type cliOptions struct {
	input  string
	output string
	format string

	binary          bool
	adjustNeighbors bool
	multi           bool
	contrast        bool
	invert          bool

	binaryThreshold   float64
	whiteThreshold    float64
	blackThreshold    float64
	contrastThreshold float64
	multiplier        float64
}

func newFlagSet(opts *cliOptions) *flag.FlagSet {
	defaults := pipeline.DefaultConfig()
	fs := flag.NewFlagSet("image-toolkit", flag.ContinueOnError)

	fs.StringVar(&opts.input, "input", "img.png", "input image file")
	fs.StringVar(&opts.output, "output", "", "output image file (default: auto-numbered outputN.png)")
	fs.StringVar(&opts.format, "format", "", "output format (default: by output extension)")

	fs.BoolVar(&opts.binary, "binary", defaults.UseBinaryThreshold,
		"binary black/white thresholding (wins over -multi)")
	fs.BoolVar(&opts.adjustNeighbors, "adjust-neighbors", false,
		"darken white neighbors of black pixels (binary mode only)")
	fs.BoolVar(&opts.multi, "multi", false,
		"multi-level thresholding with white/black bands")
	fs.BoolVar(&opts.contrast, "contrast", false,
		"apply the contrast rule inside multi-level mode")
	fs.BoolVar(&opts.invert, "invert", false,
		"invert colors as the final stage")

	fs.Float64Var(&opts.binaryThreshold, "binary-threshold", defaults.BinaryThreshold,
		"magnitude cutoff for binary mode")
	fs.Float64Var(&opts.whiteThreshold, "white-threshold", defaults.WhiteThreshold,
		"magnitude above which multi-level pixels become white")
	fs.Float64Var(&opts.blackThreshold, "black-threshold", defaults.BlackThreshold,
		"magnitude below which multi-level pixels become black")
	fs.Float64Var(&opts.contrastThreshold, "contrast-threshold", defaults.ContrastThreshold,
		"magnitude below which the contrast rule applies")
	fs.Float64Var(&opts.multiplier, "multiplier", defaults.Multiplier,
		"channel multiplier for the contrast rule")

	return fs
}

func (o *cliOptions) config() pipeline.Config {
	return pipeline.Config{
		UseBinaryThreshold:         o.binary,
		AdjustBlackPixelsNeighbors: o.adjustNeighbors,
		UseMultipleThresholds:      o.multi,
		ApplyContrast:              o.contrast,
		InvertColors:               o.invert,
		BinaryThreshold:            o.binaryThreshold,
		WhiteThreshold:             o.whiteThreshold,
		BlackThreshold:             o.blackThreshold,
		ContrastThreshold:          o.contrastThreshold,
		Multiplier:                 o.multiplier,
	}
}

func run(args []string) error {
	var opts cliOptions
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Positional arguments mirror the historical CLI:
	// [input [output [format]]].
	rest := fs.Args()
	if len(rest) > 0 {
		opts.input = rest[0]
	}
	if len(rest) > 1 {
		opts.output = rest[1]
	}
	if len(rest) > 2 {
		opts.format = rest[2]
	}

	if opts.format != "" && !imageio.FormatSupported(opts.format) {
		return fmt.Errorf("output format %q is not supported (supported: %v)",
			opts.format, imageio.SupportedFormats())
	}

	img, err := imageio.Load(opts.input)
	if err != nil {
		return err
	}

	processed := pipeline.Process(img, opts.config())

	output := opts.output
	if output == "" {
		output = imageio.NextOutputName(".")
	}
	if err := imageio.Save(processed, output, opts.format); err != nil {
		return err
	}

	fmt.Printf("Saved processed image to: %s\n", output)
	return nil
}
