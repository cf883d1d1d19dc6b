// Command so-view is an interactive terminal demo: a wireframe glass of
// liquid that follows a target orientation through a second-order system.
//
// Usage:
//
//	so-view
//	so-view -preset snappy
//	so-view -f 3 -z 0.3 -r 2
//
// Arrow keys rotate the target about the world X and Z axes, +/- change the
// liquid level, a toggles the approximate exponential map, r resets and q
// quits. The level readout is mirrored by a harmonica spring with the same
// frequency and damping for comparison.
package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	secondorder "github.com/tphakala/go-second-order"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	frequency := flag.Float64("f", 1.8, "Natural frequency in Hz")
	damping := flag.Float64("z", 0.5, "Damping ratio")
	response := flag.Float64("r", 1, "Initial response")
	preset := flag.String("preset", "", "Preset: smooth, snappy, critical, anticipate, wobbly (overrides -f -z -r)")
	flag.Parse()

	params := secondorder.Params{Frequency: *frequency, Damping: *damping, Response: *response}
	if *preset != "" {
		p, err := secondorder.ParsePreset(*preset)
		if err != nil {
			return err
		}
		params = secondorder.GetPresetParams(p)
	}

	m, err := newModel(params)
	if err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}
