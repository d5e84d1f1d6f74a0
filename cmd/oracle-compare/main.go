// Command oracle-compare checks that two CDP WAV outputs are identical apart
// from the timestamp fields CDP stamps into every file it writes.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/mattetti/cdp-testaudio/internal/config"
	"github.com/mattetti/cdp-testaudio/internal/logging"
	"github.com/mattetti/cdp-testaudio/internal/oracle"
	"github.com/mattetti/cdp-testaudio/internal/spectrum"
	"github.com/mattetti/cdp-testaudio/internal/wav"
)

const usage = "Usage: oracle-compare <file1> <file2>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flagSet := flag.NewFlagSet("oracle-compare", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	debugMode := flagSet.Bool("d", false, "Debug mode")
	configPath := flagSet.String("config", "", "Optional YAML file overriding the timestamp ranges")
	chunkMode := flagSet.Bool("chunks", false, "Compare chunk by chunk instead of byte by byte")
	flagSet.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return 1
	}
	if flagSet.NArg() != 2 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	file1, file2 := flagSet.Arg(0), flagSet.Arg(1)

	cm, err := config.NewConfigManager(*configPath)
	if err != nil {
		logging.New(stderr, *debugMode).Error("Error getting config file", "error", err)
		return 1
	}
	c := cm.GetConfig()

	logger := logging.New(stderr, *debugMode || c.GeneralParams.Debug)

	if err := c.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		return 1
	}
	opts, err := c.OracleParams.Options()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		return 1
	}

	data1, err := os.ReadFile(file1)
	if err != nil {
		logger.Error("Error reading file", "file", file1, "error", err)
		return 1
	}
	data2, err := os.ReadFile(file2)
	if err != nil {
		logger.Error("Error reading file", "file", file2, "error", err)
		return 1
	}

	if *chunkMode || c.OracleParams.ChunkAware {
		cmp, err := oracle.CompareChunks(data1, data2)
		if err != nil {
			fmt.Fprintf(stdout, "ERROR: %v\n", err)
			return 1
		}
		cmp.Report(stdout)
		if !cmp.OK() {
			return 1
		}
		return 0
	}

	logger.Debug("Comparing", "file1", file1, "file2", file2, "ranges", opts.TimestampRanges, "data_search_offset", opts.DataSearchOffset)

	res := oracle.Compare(data1, data2, opts)
	res.Report(stdout, file1, file2, opts.MaxReportedDiffs)
	if res.OK() {
		return 0
	}

	if res.Kind == oracle.ByteMismatch || res.Kind == oracle.PayloadMismatch {
		reportSpectra(stdout, logger, data1, data2)
	}
	return 1
}

// reportSpectra adds a per-channel spectral similarity line when both files
// decode, to hint whether a mismatch is audible or just rounding.
func reportSpectra(w io.Writer, logger *log.Logger, data1, data2 []byte) {
	a1, err := wav.Decode(bytes.NewReader(data1))
	if err != nil {
		logger.Debug("Skipping spectral comparison", "error", err)
		return
	}
	a2, err := wav.Decode(bytes.NewReader(data2))
	if err != nil {
		logger.Debug("Skipping spectral comparison", "error", err)
		return
	}
	logger.Debug("Decoded",
		"channels", a1.NumChannels,
		"sample_rate", a1.SampleRate,
		"bit_depth", a1.BitDepth,
		"frames", a1.NumFrames(),
	)
	if a1.NumChannels != a2.NumChannels {
		return
	}

	for ch := 0; ch < a1.NumChannels; ch++ {
		m1 := spectrum.Magnitudes(a1.Channel(ch), spectrum.BlockSize)
		m2 := spectrum.Magnitudes(a2.Channel(ch), spectrum.BlockSize)
		fmt.Fprintf(w, "  Spectral correlation (channel %d): %.6f\n", ch, spectrum.Correlation(m1, m2))
	}
}
