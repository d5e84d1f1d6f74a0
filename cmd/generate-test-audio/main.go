// Command generate-test-audio writes a 2 second 440 Hz mono sine wave for CDP testing.
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
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: generate-test-audio [-d] [filename=test.wav]")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	filename := "test.wav"
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	logger := logging.New(os.Stderr, debugMode)
	gen := generator.NewGenerator(generator.Options{Debug: debugMode}, logger)

	params := generator.DefaultSine()
	if err := gen.Sine(filename, params); err != nil {
		logger.Fatal("Failed to generate test audio", "file", filename, "error", err)
	}

	fmt.Printf("Generated %s: %gs sine wave at %gHz\n", filename, params.Duration, params.Frequency)
}
