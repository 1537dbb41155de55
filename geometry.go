package boxel

// Position is an absolute point in the root's pixel coordinate space.
// Origin is top-left; y increases downward.
type Position struct {
	X, Y float64
}

// Dimensions is a resolved width/height pair in pixels.
type Dimensions struct {
	Width, Height float64
}

// Padding holds inset distances for the four edges of a box's content area.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// PaddingAll returns Padding with the same inset on all four sides.
func PaddingAll(value float64) Padding {
	return Padding{Left: value, Right: value, Top: value, Bottom: value}
}

// PaddingXY returns Padding with separate horizontal and vertical insets.
func PaddingXY(horizontal, vertical float64) Padding {
	return Padding{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Color is a four-channel 8-bit color. The zero value is fully transparent
// black, which is a legitimate color — there is no "unset" sentinel, a
// Box's color is always meaningful.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a Color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// HorizontalAlignment is the child alignment choice along a horizontal axis.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenterH
	AlignRight
)

// VerticalAlignment is the child alignment choice along a vertical axis.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignCenterV
	AlignBottom
)

// LayoutDirection is the single-axis direction a Box lays its children out
// along. The other axis is that Box's cross axis.
type LayoutDirection int

const (
	LeftToRight LayoutDirection = iota
	TopToBottom
)
