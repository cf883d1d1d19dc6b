package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	secondorder "github.com/tphakala/go-second-order"
)

// Float constraint for the smoothing state.
type Float interface {
	float32 | float64
}

// smoothStats summarizes a run.
type smoothStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int64
	clipped  int64
}

// wavInput holds a decoded input file.
type wavInput struct {
	buf      *audio.IntBuffer
	rate     int
	channels int
	bitDepth int
}

// readWAVInput opens, validates and fully decodes a WAV file.
func readWAVInput(path string, verbose bool) (*wavInput, error) {
	// Open input file
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = inputFile.Close() }()

	// Create WAV decoder
	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	in := &wavInput{
		buf:      buf,
		rate:     buf.Format.SampleRate,
		channels: buf.Format.NumChannels,
		bitDepth: int(decoder.BitDepth),
	}
	if in.channels <= 0 || in.rate <= 0 {
		return nil, fmt.Errorf("invalid WAV format: %d Hz, %d channels", in.rate, in.channels)
	}
	switch in.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d", in.bitDepth)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			in.rate, in.channels, in.bitDepth, len(buf.Data)/in.channels)
	}

	return in, nil
}

// writeWAVOutput encodes buf to path.
func writeWAVOutput(path string, buf *audio.IntBuffer, bitDepth int) (err error) {
	// Create output file
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outputFile.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(outputFile, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavFormatPCM)
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	// Close writes the final chunk sizes into the header
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// progressTracker handles progress reporting.
type progressTracker struct {
	total        int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(total int64, verbose bool) *progressTracker {
	return &progressTracker{
		total:   total,
		verbose: verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(current int64) {
	if !p.verbose || p.total == 0 {
		return
	}

	progress := int(float64(current) / float64(p.total) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// getMaxValue returns the maximum sample value for the given bit depth.
// Depths other than 16, 24 and 32 are rejected when the input is read.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// smoothInterleaved runs interleaved samples through one vector system
// spanning all channels, in place. Samples are normalized by maxVal and
// clipped back to ±maxVal. It returns the number of clipped samples.
func smoothInterleaved[F Float](
	sys *secondorder.Vector[F],
	data []int,
	dt, maxVal float64,
	progress *progressTracker,
) int64 {
	channels := sys.Len()
	frame := make([]F, channels)
	invMaxVal := 1.0 / maxVal

	var clipped int64
	frames := len(data) / channels
	for i := range frames {
		samples := data[i*channels : (i+1)*channels]

		// Deinterleave one frame
		for ch, s := range samples {
			frame[ch] = F(float64(s) * invMaxVal)
		}

		out := sys.Update(dt, frame)

		// Interleave and clip
		for ch := range samples {
			v := math.Round(float64(out[ch]) * maxVal)
			switch {
			case v > maxVal:
				v = maxVal
				clipped++
			case v < -maxVal-1:
				v = -maxVal - 1
				clipped++
			}
			samples[ch] = int(v)
		}

		if (i+1)%chunkFrames == 0 {
			progress.reportIfNeeded(int64(i + 1))
		}
	}

	return clipped
}

// smoothWAV smooths inputPath into outputPath.
func smoothWAV[F Float](inputPath, outputPath string, p secondorder.Params, verbose bool) (*smoothStats, error) {
	// 1. Decode input
	input, err := readWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}

	// 2. Create the system, at rest at silence
	sys, err := secondorder.NewVector(p, make([]F, input.channels))
	if err != nil {
		return nil, err
	}

	// 3. Process in place
	frames := int64(len(input.buf.Data) / input.channels)
	progress := newProgressTracker(frames, verbose)
	clipped := smoothInterleaved(sys, input.buf.Data, 1/float64(input.rate), getMaxValue(input.bitDepth), progress)

	// 4. Encode at the source bit depth
	if err := writeWAVOutput(outputPath, input.buf, input.bitDepth); err != nil {
		return nil, err
	}

	if verbose && clipped > 0 {
		log.Printf("Clipped %d samples", clipped)
	}

	return &smoothStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
		frames:   frames,
		clipped:  clipped,
	}, nil
}
