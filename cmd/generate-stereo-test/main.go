// Command generate-stereo-test writes a 2 second stereo file with 440 Hz on
// the left channel and 880 Hz on the right.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattetti/cdp-testaudio/internal/generator"
	"github.com/mattetti/cdp-testaudio/internal/logging"
)

var debugMode bool

func init() {
	flag.BoolVar(&debugMode, "d", false, "Debug mode")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: generate-stereo-test [-d] [filename=stereo_test.wav]")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	filename := "stereo_test.wav"
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	logger := logging.New(os.Stderr, debugMode)
	gen := generator.NewGenerator(generator.Options{Debug: debugMode}, logger)

	params := generator.DefaultStereo()
	if err := gen.Stereo(filename, params); err != nil {
		logger.Fatal("Failed to generate stereo test audio", "file", filename, "error", err)
	}

	fmt.Printf("Generated %s: %gs stereo (%gHz left, %gHz right)\n",
		filename, params.Duration, params.LeftFrequency, params.RightFrequency)
}
