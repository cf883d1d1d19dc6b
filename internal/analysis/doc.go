// Package analysis records second-order trajectories and measures their step
// response: peak, overshoot, settling time, decay ratio and dominant
// oscillation frequency.
//
// Metrics are computed from the excursion e(t) = y(t) - final, signed so
// that the step moves in the positive direction.
package analysis
