package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// ErrZeroStep indicates a step whose initial and final values are equal.
var ErrZeroStep = errors.New("step has zero size")

// StepMetrics summarizes a step response from Initial to Final.
type StepMetrics struct {
	Initial float64
	Final   float64

	// Peak is the output value furthest along the step direction, at PeakTime.
	Peak     float64
	PeakTime float64

	// Overshoot is how far Peak passes Final, as a fraction of the step size.
	// Zero when the output never passes Final.
	Overshoot float64

	// SettlingTime is the start of the final stretch in which the output
	// stays within the settle band around Final. Settled is false when the
	// last sample is still outside the band.
	SettlingTime float64
	Settled      bool

	// DecayRatio is the magnitude ratio of the second to the first extremum
	// of the excursion around Final, half a period apart. Zero when the
	// response has fewer than two extrema.
	DecayRatio float64

	// DominantFrequency is the strongest non-DC frequency of the excursion
	// in Hz.
	DominantFrequency float64
}

// String formats the metrics on one line.
func (m StepMetrics) String() string {
	settle := "never"
	if m.Settled {
		settle = fmt.Sprintf("%.3fs", m.SettlingTime)
	}
	return fmt.Sprintf("peak=%.4f@%.3fs overshoot=%.1f%% settle=%s decay=%.3f freq=%.2fHz",
		m.Peak, m.PeakTime, m.Overshoot*100, settle, m.DecayRatio, m.DominantFrequency)
}

// StepResponse measures the trajectory's response to a step from initial to
// final. band is the settle band as a fraction of the step size; zero or
// negative selects DefaultSettleBand.
func StepResponse(t *Trajectory, initial, final, band float64) (StepMetrics, error) {
	if t.Len() == 0 {
		return StepMetrics{}, ErrEmptyTrajectory
	}
	size := final - initial
	if size == 0 {
		return StepMetrics{}, ErrZeroStep
	}
	if band <= 0 {
		band = DefaultSettleBand
	}

	m := StepMetrics{Initial: initial, Final: final}

	// excursion past the target, positive in the step direction
	e := make([]float64, t.Len())
	copy(e, t.Values)
	floats.AddConst(-final, e)
	floats.Scale(math.Copysign(1, size), e)

	peak := floats.MaxIdx(e)
	m.Peak = t.Values[peak]
	m.PeakTime = t.Time(peak)
	m.Overshoot = math.Max(0, e[peak]) / math.Abs(size)

	m.SettlingTime, m.Settled = settlingTime(t, e, band*math.Abs(size))
	m.DecayRatio = decayRatio(e)
	m.DominantFrequency = dominantFrequency(e, t.DT)

	return m, nil
}

// settlingTime finds the last sample outside ±tol.
func settlingTime(t *Trajectory, e []float64, tol float64) (float64, bool) {
	for i := len(e) - 1; i >= 0; i-- {
		if math.Abs(e[i]) > tol {
			if i == len(e)-1 {
				return math.Inf(1), false
			}
			return t.Time(i + 1), true
		}
	}
	return 0, true
}

// decayRatio compares the first two local extrema of e that lie on opposite
// sides of zero.
func decayRatio(e []float64) float64 {
	var amps []float64
	for i := 1; i < len(e)-1 && len(amps) < 2; i++ {
		isMax := e[i] > 0 && e[i] >= e[i-1] && e[i] > e[i+1]
		isMin := e[i] < 0 && e[i] <= e[i-1] && e[i] < e[i+1]
		if !isMax && !isMin {
			continue
		}
		if len(amps) == 1 && math.Signbit(amps[0]) == math.Signbit(e[i]) {
			continue
		}
		amps = append(amps, e[i])
	}
	if len(amps) < 2 {
		return 0
	}
	return math.Abs(amps[1] / amps[0])
}

// dominantFrequency returns the frequency in Hz of the largest non-DC
// Fourier coefficient of e sampled every dt seconds.
func dominantFrequency(e []float64, dt float64) float64 {
	if len(e) < 4 {
		return 0
	}

	fft := fourier.NewFFT(len(e))
	coeffs := fft.Coefficients(nil, e)

	mags := make([]float64, len(coeffs)-1)
	for i, c := range coeffs[1:] {
		mags[i] = cmplx.Abs(c)
	}
	if floats.Max(mags) == 0 {
		return 0
	}

	return fft.Freq(floats.MaxIdx(mags)+1) / dt
}

// UnderdampedOvershoot returns the continuous-time overshoot of a
// second-order system with r = 0 and damping ratio z, which is also the
// ratio between successive half-period extrema. It is zero for z >= 1.
func UnderdampedOvershoot(z float64) float64 {
	if z >= 1 {
		return 0
	}
	if z <= 0 {
		return 1
	}
	return math.Exp(-math.Pi * z / math.Sqrt(1-z*z))
}
