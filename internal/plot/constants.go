package plot

// Default image size and stroke.
const (
	defaultWidth     = 800
	defaultHeight    = 400
	defaultLineWidth = 2
)

// Layout in pixels. The left margin leaves room for a 6-character tick label
// in the 7x13 face.
const (
	marginLeft   = 56
	marginRight  = 12
	marginTop    = 24
	marginBottom = 24
	labelGap     = 6
	labelInset   = 4
	glyphHeight  = 13
)

// rangePadding widens the value range by this fraction on each side.
const rangePadding = 0.05
