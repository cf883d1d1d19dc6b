package analysis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrEmptyTrajectory indicates a trajectory without samples.
var ErrEmptyTrajectory = errors.New("empty trajectory")

// Trajectory is a fixed-step recording of a system's target and output.
// Sample i is taken after update i+1, at time (i+1)·DT.
type Trajectory struct {
	DT      float64
	Targets []float64
	Values  []float64
}

// NewTrajectory returns an empty trajectory with room for n samples.
func NewTrajectory(dt float64, n int) *Trajectory {
	return &Trajectory{
		DT:      dt,
		Targets: make([]float64, 0, n),
		Values:  make([]float64, 0, n),
	}
}

// Record appends one sample.
func (t *Trajectory) Record(target, value float64) {
	t.Targets = append(t.Targets, target)
	t.Values = append(t.Values, value)
}

// Len returns the number of samples.
func (t *Trajectory) Len() int {
	return len(t.Values)
}

// Time returns the time of sample i in seconds.
func (t *Trajectory) Time(i int) float64 {
	return float64(i+1) * t.DT
}

// Duration returns the time of the last sample.
func (t *Trajectory) Duration() float64 {
	return t.Time(t.Len() - 1)
}

// Run drives step for frames updates of dt seconds each. step receives the
// frame index and returns the target and the system output for that frame.
func Run(frames int, dt float64, step func(frame int) (target, value float64)) *Trajectory {
	t := NewTrajectory(dt, frames)
	for i := range frames {
		t.Record(step(i))
	}
	return t
}

// WriteCSV writes the trajectory as frame,t,target,value rows with a header.
func (t *Trajectory) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"frame", "t", "target", "value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, 4)
	for i := range t.Values {
		row[0] = strconv.Itoa(i)
		row[1] = formatFloat(t.Time(i))
		row[2] = formatFloat(t.Targets[i])
		row[3] = formatFloat(t.Values[i])
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', csvPrecision, 64)
}
