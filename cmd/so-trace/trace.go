package main

import (
	"errors"
	"fmt"
	"strings"

	secondorder "github.com/tphakala/go-second-order"
	"github.com/tphakala/go-second-order/internal/mathutil"
	"github.com/tphakala/go-second-order/quatutil"
)

// ErrUnknownSystem indicates an unsupported -system value.
var ErrUnknownSystem = errors.New("unknown system")

// stepper advances a system by one frame toward its held target and returns
// the scalar quantity that is traced.
type stepper func(dt float64) float64

// newStepper builds a system at rest at zero that steps toward target, and
// returns the value the traced quantity settles at.
//
// For the quaternion system target is a rotation angle about Z in radians and
// the traced quantity is the rotation angle from identity, so it settles in
// [0, π]. The angle system settles at target wrapped into (-π, π]. approx
// selects the approximate exponential map for every frame.
func newStepper(system string, p secondorder.Params, target float64, approx bool) (stepper, float64, error) {
	switch strings.ToLower(system) {
	case "scalar":
		s, err := secondorder.NewScalar(p, 0)
		if err != nil {
			return nil, 0, err
		}
		return func(dt float64) float64 { return s.Update(dt, target) }, target, nil

	case "angle":
		a, err := secondorder.NewAngle(p, 0)
		if err != nil {
			return nil, 0, err
		}
		return func(dt float64) float64 { return a.Update(dt, target) }, mathutil.WrapAngle(target), nil

	case "vector":
		v, err := secondorder.NewVector(p, make([]float64, len(vectorGains)))
		if err != nil {
			return nil, 0, err
		}
		x := make([]float64, len(vectorGains))
		for i, g := range vectorGains {
			x[i] = g * target
		}
		return func(dt float64) float64 { return v.Update(dt, x)[0] }, x[0], nil

	case "quat", "quaternion":
		q, err := secondorder.NewQuaternion(p, quatutil.Identity())
		if err != nil {
			return nil, 0, err
		}
		goal := quatutil.FromAxisAngle(secondorder.Vec3{Z: 1}, target)
		step := func(dt float64) float64 {
			if approx {
				q.SetApproxThreshold(dt)
			}
			return quatutil.Angle(quatutil.Identity(), q.Step(dt, goal))
		}
		return step, quatutil.Angle(quatutil.Identity(), goal), nil

	default:
		return nil, 0, fmt.Errorf("%w: %q (want scalar, angle, vector or quat)", ErrUnknownSystem, system)
	}
}
