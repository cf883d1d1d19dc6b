package main

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"gonum.org/v1/gonum/num/quat"

	secondorder "github.com/tphakala/go-second-order"
	"github.com/tphakala/go-second-order/internal/mathutil"
	"github.com/tphakala/go-second-order/quatutil"
)

// tickMsg drives the frame loop.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameDuration, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model is a glass of liquid following a target orientation. The glass
// orientation, the liquid level and the surface slosh are each smoothed by
// their own second-order system.
type model struct {
	params secondorder.Params

	target secondorder.Quat
	glass  *secondorder.Quaternion

	levelTarget float64
	level       *secondorder.Scalar
	slosh       *secondorder.Vector[float64]
	sloshTarget []float64

	// harmonica spring on the level for comparison; r has no equivalent
	// there, so it only matches when r = 0
	refSpring harmonica.Spring
	refDT     float64 // step refSpring was built for
	refLevel  float64
	refVel    float64

	approx bool
	last   time.Time
	frames int
}

func newModel(p secondorder.Params) (*model, error) {
	identity := quatutil.Identity()

	glass, err := secondorder.NewQuaternion(p, identity)
	if err != nil {
		return nil, err
	}
	level, err := secondorder.NewScalar(p, startLevel)
	if err != nil {
		return nil, err
	}
	slosh, err := secondorder.NewVector(secondorder.GetPresetParams(secondorder.PresetWobbly), make([]float64, sloshElements))
	if err != nil {
		return nil, err
	}

	m := &model{
		params:      p,
		target:      identity,
		glass:       glass,
		levelTarget: startLevel,
		level:       level,
		slosh:       slosh,
		sloshTarget: make([]float64, sloshElements),
		refLevel:    startLevel,
	}
	m.syncReference(harmonica.FPS(referenceFPS))
	return m, nil
}

// Init implements tea.Model interface.
func (m *model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model interface.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case tickMsg:
		now := time.Time(msg)
		dt := maxFrameDT
		if !m.last.IsZero() {
			dt = math.Min(now.Sub(m.last).Seconds(), maxFrameDT)
		}
		m.last = now
		if dt > 0 {
			m.advance(dt)
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "up":
		m.rotateTarget(secondorder.Vec3{X: 1}, -rotateStep)
	case "down":
		m.rotateTarget(secondorder.Vec3{X: 1}, rotateStep)
	case "left":
		m.rotateTarget(secondorder.Vec3{Z: 1}, rotateStep)
	case "right":
		m.rotateTarget(secondorder.Vec3{Z: 1}, -rotateStep)
	case "+", "=":
		m.levelTarget = math.Min(m.levelTarget+levelStep, maxLevel)
	case "-", "_":
		m.levelTarget = math.Max(m.levelTarget-levelStep, minLevel)
	case "a":
		m.approx = !m.approx
		if m.approx {
			m.glass.SetApproxThreshold(maxFrameDT)
		} else {
			m.glass.SetApproxThreshold(0)
		}
	case "r":
		m.reset()
	}
	return nil
}

// rotateTarget applies a world-axis rotation to the target orientation.
func (m *model) rotateTarget(axis secondorder.Vec3, angle float64) {
	m.target = quatutil.Normalize(quat.Mul(quatutil.FromAxisAngle(axis, angle), m.target))
}

// advance steps every system by dt seconds.
func (m *model) advance(dt float64) {
	m.glass.Step(dt, m.target)
	m.level.Update(dt, m.levelTarget)
	m.syncReference(dt)
	m.refLevel, m.refVel = m.refSpring.Update(m.refLevel, m.refVel, m.levelTarget)

	w := m.glass.AngularVelocity()
	m.sloshTarget[0] = mathutil.Clamp(-w.X*sloshGain, -sloshMaxTilt, sloshMaxTilt)
	m.sloshTarget[1] = mathutil.Clamp(-w.Z*sloshGain, -sloshMaxTilt, sloshMaxTilt)
	m.slosh.Update(dt, m.sloshTarget)

	m.frames++
}

func (m *model) reset() {
	identity := quatutil.Identity()
	m.target = identity
	m.glass.Reset(identity)
	m.levelTarget = startLevel
	m.level.Reset(startLevel)
	m.refLevel, m.refVel = startLevel, 0
	clear(m.sloshTarget)
	m.slosh.Reset(m.sloshTarget)
}

// syncReference rebuilds the reference spring when the frame step changes,
// since a harmonica spring bakes its time step into its coefficients.
func (m *model) syncReference(dt float64) {
	if dt == m.refDT {
		return
	}
	m.refSpring = harmonica.NewSpring(dt, 2*math.Pi*m.params.Frequency, m.params.Damping)
	m.refDT = dt
}
