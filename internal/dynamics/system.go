package dynamics

// System is a second-order system over a value type V with arithmetic A.
//
// It is not safe for concurrent use; each instance belongs to one update loop.
type System[V any, A Algebra[V]] struct {
	alg A
	k   Coefficients

	y  V // current value
	yd V // current velocity
	xp V // previous target, reference for the velocity estimate

	// Scratch reused across updates
	xd  V
	acc V
}

// NewSystem creates a system at rest at x0. x0 is copied.
func NewSystem[V any, A Algebra[V]](alg A, k Coefficients, x0 V) *System[V, A] {
	s := &System[V, A]{
		alg: alg,
		k:   k,
		y:   alg.Zero(x0),
		yd:  alg.Zero(x0),
		xp:  alg.Zero(x0),
		xd:  alg.Zero(x0),
		acc: alg.Zero(x0),
	}
	s.Reset(x0)
	return s
}

// Update advances the system by dt toward target x, estimating the target's
// velocity by finite difference against the previous target.
func (s *System[V, A]) Update(dt float64, x V) V {
	x = s.alg.Target(s.y, x)

	// estimate the target velocity
	s.xd = s.alg.Delta(s.xd, s.xp, x)
	s.xd = s.alg.Scale(s.xd, 1/dt, s.xd)
	s.xp = s.alg.Copy(s.xp, x)

	return s.step(dt, x, s.xd)
}

// UpdateWithVelocity advances the system by dt toward target x moving at
// velocity xd. The finite-difference reference is left untouched.
func (s *System[V, A]) UpdateWithVelocity(dt float64, x, xd V) V {
	x = s.alg.Target(s.y, x)
	return s.step(dt, x, xd)
}

func (s *System[V, A]) step(dt float64, x, xd V) V {
	// integrate position by velocity
	s.y = s.alg.AddScaled(s.y, s.y, dt, s.yd)

	k2 := s.k.StableK2(dt)

	// acceleration numerator: x + k3·xd - y - k1·yd
	s.acc = s.alg.Sub(s.acc, x, s.y)
	s.acc = s.alg.AddScaled(s.acc, s.acc, s.k.K3, xd)
	s.acc = s.alg.AddScaled(s.acc, s.acc, -s.k.K1, s.yd)

	// integrate velocity by acceleration
	s.yd = s.alg.AddScaled(s.yd, s.yd, dt/k2, s.acc)

	return s.y
}

// Value returns the current value without advancing the system.
func (s *System[V, A]) Value() V {
	return s.y
}

// Velocity returns the current velocity.
func (s *System[V, A]) Velocity() V {
	return s.yd
}

// Coefficients returns the system constants.
func (s *System[V, A]) Coefficients() Coefficients {
	return s.k
}

// Reset puts the system at rest at x0.
func (s *System[V, A]) Reset(x0 V) {
	s.y = s.alg.Copy(s.y, x0)
	s.xp = s.alg.Copy(s.xp, x0)
	s.yd = s.alg.Clear(s.yd)
}
