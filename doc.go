// Package secondorder provides second-order dynamical systems for procedural
// animation in pure Go.
//
// A second-order system follows a moving target the way a mass on a damped
// spring would: smoothly, with configurable speed, vibration and initial
// response. It is typically updated once per rendered frame with the latest
// target (a pointer-driven orientation, a slider value) and its output drives
// rendering directly.
//
// # Features
//
//   - Scalar, angle, vector and quaternion variants sharing one core
//   - Angle smoothing that always takes the short way around
//   - Orientation smoothing on the rotation manifold via the exponential map
//   - Exact and small-step approximate quaternion updates
//   - Frame-time spike protection: a clamp keeps the integration stable
//   - No allocation in any update
//   - Deterministic: identical inputs give bit-identical outputs
//
// # Quick Start
//
//	s, err := secondorder.NewScalar(secondorder.Params{
//	    Frequency: 1.8,
//	    Damping:   0.5,
//	    Response:  1,
//	}, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for frame := range frames {
//	    level := s.Update(frame.DeltaSeconds, frame.TargetLevel)
//	    render(level)
//	}
//
// # Parameters
//
// Every system is shaped by three parameters:
//
//   - Frequency f (Hz, f > 0): how fast the system reacts and the frequency
//     it vibrates at.
//   - Damping z: 0 never stops vibrating, 0 < z < 1 vibrates while settling,
//     z >= 1 settles without overshoot.
//   - Response r: 0 eases in from rest, 0 < r < 1 responds immediately,
//     r > 1 overshoots, r < 0 winds up in the opposite direction first.
//
// Named presets are available through [GetPresetParams].
//
// # Orientations
//
// [Quaternion] smooths unit quaternions. Its [Quaternion.Update] uses the
// exact exponential and logarithmic maps from package quatutil;
// [Quaternion.UpdateApprox] swaps in first-order approximations that skip
// trigonometry and are accurate only for small per-step rotations.
// [Quaternion.Step] chooses between them using a caller-set dt threshold.
//
// # Preconditions
//
// Updates do not validate their inputs. dt must be positive and finite and
// quaternion targets must be unit length; anything else gives undefined
// results. Parameters are validated once, at construction.
//
// # Thread Safety
//
// Systems are not safe for concurrent use. Each instance should be owned and
// updated by a single goroutine, usually the one running the frame loop.
//
// # Attribution
//
// The formulation follows t3ssel8r's "Giving Personality to Procedural
// Animations using Math" (https://www.youtube.com/watch?v=KPoeNZZ6H4s).
// The quaternion exponential-map helpers follow Daniel Holden's notes at
// https://theorangeduck.com/page/exponential-map-angle-axis-angular-velocity.
package secondorder
