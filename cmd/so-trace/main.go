package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	secondorder "github.com/tphakala/go-second-order"
	"github.com/tphakala/go-second-order/internal/analysis"
	"github.com/tphakala/go-second-order/internal/plot"
)

// options holds the parsed command line.
type options struct {
	system  string
	params  secondorder.Params
	dt      float64
	frames  int
	target  float64
	approx  bool
	csvPath string
	pngPath string
	verbose bool
}

func main() {
	// Command-line flags
	var (
		system    = flag.String("system", defaultSystem, "System: scalar, angle, vector, quat")
		frequency = flag.Float64("f", defaultFrequency, "Natural frequency in Hz")
		damping   = flag.Float64("z", defaultDamping, "Damping ratio")
		response  = flag.Float64("r", defaultResponse, "Initial response")
		preset    = flag.String("preset", "", "Preset: smooth, snappy, critical, anticipate, wobbly (overrides -f -z -r)")
		dt        = flag.Float64("dt", defaultDT, "Frame time in seconds")
		frames    = flag.Int("frames", defaultFrames, "Number of frames")
		target    = flag.Float64("target", defaultTarget, "Step target (radians for angle and quat)")
		approx    = flag.Bool("approx", false, "Use the approximate exponential map (quat only)")
		csvPath   = flag.String("csv", "", "Write the trajectory CSV here instead of stdout")
		pngPath   = flag.String("png", "", "Render a PNG plot to this file")
		verbose   = flag.Bool("v", false, "Verbose output")
		demo      = flag.Bool("demo", false, "Compare the presets and exit")
	)
	flag.Parse()

	if *demo {
		runDemo(os.Stdout)
		return
	}

	params := secondorder.Params{Frequency: *frequency, Damping: *damping, Response: *response}
	if *preset != "" {
		p, err := secondorder.ParsePreset(*preset)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		params = secondorder.GetPresetParams(p)
	}

	opts := options{
		system:  *system,
		params:  params,
		dt:      *dt,
		frames:  *frames,
		target:  *target,
		approx:  *approx,
		csvPath: *csvPath,
		pngPath: *pngPath,
		verbose: *verbose,
	}

	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run traces one step response and writes its outputs.
func run(opts options, stdout io.Writer) error {
	if !(opts.dt > 0) {
		return fmt.Errorf("frame time must be positive, got %v", opts.dt)
	}
	if opts.frames <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", opts.frames)
	}

	step, final, err := newStepper(opts.system, opts.params, opts.target, opts.approx)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("System: %s, %s", opts.system, opts.params)
		log.Printf("Frames: %d at dt=%gs (%.2fs)", opts.frames, opts.dt, float64(opts.frames)*opts.dt)
	}

	traj := analysis.Run(opts.frames, opts.dt, func(int) (float64, float64) {
		return final, step(opts.dt)
	})

	if err := writeCSV(traj, opts.csvPath, stdout); err != nil {
		return err
	}

	if final != 0 {
		m, err := analysis.StepResponse(traj, 0, final, 0)
		if err != nil {
			return fmt.Errorf("failed to analyze response: %w", err)
		}
		log.Printf("Metrics: %s", m)
	}

	if opts.pngPath != "" {
		title := fmt.Sprintf("%s %s", opts.system, opts.params)
		if err := plot.SavePNG(opts.pngPath, plot.DefaultConfig(), traj, title); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("Plot written to %s", opts.pngPath)
		}
	}

	return nil
}

func writeCSV(traj *analysis.Trajectory, path string, stdout io.Writer) error {
	if path == "" {
		return traj.WriteCSV(stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := traj.WriteCSV(file); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return file.Close()
}

// runDemo prints step-response metrics for every preset.
func runDemo(w io.Writer) {
	fmt.Fprintln(w, "=== Second-Order Preset Comparison ===")
	fmt.Fprintf(w, "Unit step, %d frames at %gs\n\n", demoFrames, defaultDT)

	presets := []secondorder.Preset{
		secondorder.PresetSmooth,
		secondorder.PresetSnappy,
		secondorder.PresetCritical,
		secondorder.PresetAnticipate,
		secondorder.PresetWobbly,
	}

	for _, preset := range presets {
		p := secondorder.GetPresetParams(preset)
		step, _, err := newStepper("scalar", p, 1, false)
		if err != nil {
			fmt.Fprintf(w, "  %-10s Error - %v\n", preset, err)
			continue
		}

		traj := analysis.Run(demoFrames, defaultDT, func(int) (float64, float64) {
			return 1, step(defaultDT)
		})
		m, err := analysis.StepResponse(traj, 0, 1, 0)
		if err != nil {
			fmt.Fprintf(w, "  %-10s Error - %v\n", preset, err)
			continue
		}

		fmt.Fprintf(w, "  %-10s %s\n             %s\n", preset, p, m)
	}
}
