package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	secondorder "github.com/tphakala/go-second-order"
	"github.com/tphakala/go-second-order/quatutil"
)

// camera tilts the scene toward the viewer so rings read as ellipses.
var camera = mgl64.QuatRotate(0.35, mgl64.Vec3{1, 0, 0})

// toMGL converts a rotation to mathgl's representation.
func toMGL(q secondorder.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}
}

// canvas is a character grid with an orthographic projection of world space.
type canvas struct {
	width, height int
	cells         [][]rune
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(string(runeEmpty), width))
	}
	return &canvas{width: width, height: height, cells: cells}
}

// plot draws r at world point p, seen through the camera.
func (c *canvas) plot(p mgl64.Vec3, r rune) {
	v := camera.Rotate(p)
	col := int(math.Round(float64(c.width)/2 + v.X()*worldScale*cellAspect))
	row := int(math.Round(float64(c.height)/2 - v.Y()*worldScale))
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	c.cells[row][col] = r
}

func (c *canvas) line(a, b mgl64.Vec3, r rune) {
	steps := max(1, int(b.Sub(a).Len()*lineStepsUnit))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(a.Add(b.Sub(a).Mul(t)), r)
	}
}

// ring draws a circle of the given radius at height y in the frame rot,
// centered on origin.
func (c *canvas) ring(rot mgl64.Quat, origin mgl64.Vec3, radius, y float64, r rune) {
	prev := origin.Add(rot.Rotate(mgl64.Vec3{radius, y, 0}))
	for i := 1; i <= ringSegments; i++ {
		a := 2 * math.Pi * float64(i) / ringSegments
		p := origin.Add(rot.Rotate(mgl64.Vec3{radius * math.Cos(a), y, radius * math.Sin(a)}))
		c.line(prev, p, r)
		prev = p
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(strings.TrimRight(string(row), string(runeEmpty)))
		b.WriteByte('\n')
	}
	return b.String()
}

// drawScene renders the glass, its liquid and the target marker.
func (m *model) drawScene(c *canvas) {
	rot := toMGL(m.glass.Value())
	origin := mgl64.Vec3{}
	half := glassHeight / 2

	// walls
	for i := range wallSegments {
		a := 2 * math.Pi * float64(i) / wallSegments
		x, z := glassRadius*math.Cos(a), glassRadius*math.Sin(a)
		c.line(rot.Rotate(mgl64.Vec3{x, -half, z}), rot.Rotate(mgl64.Vec3{x, half, z}), runeGlass)
	}
	c.ring(rot, origin, glassRadius, -half, runeGlass)
	c.ring(rot, origin, glassRadius, half, runeRim)

	// liquid surface: level in glass space, flat in world space apart from slosh
	if lvl := m.level.Value(); lvl > 0 {
		center := rot.Rotate(mgl64.Vec3{0, -half + lvl*glassHeight, 0})
		tilt := m.slosh.Values()
		surface := mgl64.QuatRotate(tilt[0], mgl64.Vec3{1, 0, 0}).Mul(mgl64.QuatRotate(tilt[1], mgl64.Vec3{0, 0, 1}))
		c.ring(surface, center, glassRadius, 0, runeLiquid)
	}

	// where the rim is heading
	c.plot(toMGL(m.target).Rotate(mgl64.Vec3{0, half + targetMarkerLift, 0}), runeTarget)
}

// View implements tea.Model interface.
func (m *model) View() string {
	c := newCanvas(canvasWidth, canvasHeight)
	m.drawScene(c)

	mode := "exact"
	if m.approx {
		mode = "approx"
	}

	var b strings.Builder
	b.WriteString("Second-Order Glass\n")
	b.WriteString("==================\n")
	b.WriteString(c.String())
	b.WriteString(fmt.Sprintf("mode: %-6s  %s  frame %d\n", mode, m.params, m.frames))
	b.WriteString(fmt.Sprintf("tilt error: %5.1f°  angular velocity: %5.2f rad/s\n",
		quatutil.Angle(m.target, m.glass.Value())*180/math.Pi, r3.Norm(m.glass.AngularVelocity())))
	b.WriteString(fmt.Sprintf("level      [%s] %.2f  target %.2f\n", levelBar(m.level.Value()), m.level.Value(), m.levelTarget))
	b.WriteString(fmt.Sprintf("harmonica  [%s] %.2f\n", levelBar(m.refLevel), m.refLevel))
	b.WriteString("\narrows rotate  +/- level  a approx  r reset  q quit\n")
	return b.String()
}

func levelBar(v float64) string {
	n := int(math.Round(math.Max(0, math.Min(1, v)) * levelBarLen))
	return strings.Repeat("#", n) + strings.Repeat(".", levelBarLen-n)
}
