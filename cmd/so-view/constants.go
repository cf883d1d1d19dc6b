package main

import "time"

// Frame loop
const (
	frameDuration = 16 * time.Millisecond
	maxFrameDT    = 0.016 // seconds; longer frames are clamped
	referenceFPS  = 60    // initial step of the harmonica reference spring
)

// Controls
const (
	rotateStep = 0.15 // radians per arrow key press
	levelStep  = 0.1  // liquid level change per +/- press
	minLevel   = 0.0
	maxLevel   = 1.0
	startLevel = 0.5
)

// Slosh: the liquid surface tilts against the glass's angular velocity.
const (
	sloshGain     = 0.08
	sloshMaxTilt  = 0.6 // radians
	sloshElements = 2   // tilt about X and about Z
)

// Canvas and glass geometry, in world units. Terminal cells are about twice
// as tall as they are wide.
const (
	canvasWidth   = 64
	canvasHeight  = 26
	cellAspect    = 2.0
	worldScale    = 9.0 // rows per world unit
	glassRadius   = 0.8
	glassHeight   = 2.0
	ringSegments  = 32
	wallSegments  = 8
	lineStepsUnit = 40 // samples per world unit when drawing lines

	targetMarkerLift = 0.3
)

// Canvas runes
const (
	runeGlass   = '·'
	runeRim     = 'o'
	runeLiquid  = '~'
	runeTarget  = '+'
	runeEmpty   = ' '
	levelBarLen = 20
)
