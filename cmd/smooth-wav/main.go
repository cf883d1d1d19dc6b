// Command smooth-wav runs every channel of a WAV file through a second-order
// system, one update per sample frame. With r = 0 and a low frequency this
// is a resonant low-pass filter; higher damping removes the resonance.
//
// Usage:
//
//	smooth-wav -f 20 -z 0.7 input.wav output.wav
//	smooth-wav -preset wobbly input.wav output.wav
//	smooth-wav -f 200 -z 0.3 -fast input.wav output.wav   # float32 state
//
// The output keeps the input's sample rate, channel count and bit depth.
// Samples that would exceed the bit depth's range are clipped.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	secondorder "github.com/tphakala/go-second-order"
)

const (
	// Frames per progress step
	chunkFrames = 65536

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%
	percentScale     = 100

	// CLI defaults
	defaultFrequency = 20.0
	defaultDamping   = 0.7
	defaultResponse  = 0.0
	minRequiredArgs  = 2

	// WAV format
	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	frequency := flag.Float64("f", defaultFrequency, "Natural frequency in Hz")
	damping := flag.Float64("z", defaultDamping, "Damping ratio")
	response := flag.Float64("r", defaultResponse, "Initial response")
	preset := flag.String("preset", "", "Preset: smooth, snappy, critical, anticipate, wobbly (overrides -f -z -r)")
	fast := flag.Bool("fast", false, "Use float32 state")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -f 20 -z 0.7 in.wav out.wav   # Gentle low-pass\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f 800 -z 0.1 in.wav out.wav  # Ringing resonance\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}
	inputPath, outputPath := args[0], args[1]

	params := secondorder.Params{Frequency: *frequency, Damping: *damping, Response: *response}
	if *preset != "" {
		p, err := secondorder.ParsePreset(*preset)
		if err != nil {
			return err
		}
		params = secondorder.GetPresetParams(p)
	}

	if *verbose {
		log.Printf("Smoothing %s -> %s with %s", inputPath, outputPath, params)
		if *fast {
			log.Printf("Using float32 state")
		}
	}

	start := time.Now()

	var (
		stats *smoothStats
		err   error
	)
	if *fast {
		stats, err = smoothWAV[float32](inputPath, outputPath, params, *verbose)
	} else {
		stats, err = smoothWAV[float64](inputPath, outputPath, params, *verbose)
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("Smoothed %d frames (%d Hz, %d ch, %d-bit) in %v\n",
		stats.frames, stats.rate, stats.channels, stats.bitDepth, elapsed.Round(time.Millisecond))
	if stats.clipped > 0 {
		fmt.Printf("Warning: %d samples clipped\n", stats.clipped)
	}

	return nil
}
