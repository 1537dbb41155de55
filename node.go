package boxel

// NodeKind distinguishes a rectangle container from a text leaf.
type NodeKind int

const (
	BoxKind NodeKind = iota
	TextKind
)

// TextLine is one wrapped (or, for non-wrapping text, the only) line of a
// Text node. It carries only the substring and the line's intra-node y
// offset; absolute positioning happens in the render-command emitter.
type TextLine struct {
	Text string
	Y    float64
}

// Node is one element of the layout tree: either a Box (a rectangle
// container with children) or a Text leaf. A single struct holds the fields
// of both kinds, discriminated by Kind, rather than splitting into separate
// Box/Text struct hierarchies — the solver passes below dispatch on Kind
// throughout.
type Node struct {
	ID   uint64
	Kind NodeKind

	Width  Sizing
	Height Sizing

	// Box fields.
	Padding     Padding
	ChildGap    float64
	AlignH      HorizontalAlignment
	AlignV      VerticalAlignment
	Direction   LayoutDirection
	Color       Color
	Children    []*Node

	// Text fields.
	FontID    uint32
	FontSize  uint16
	FontColor Color
	BreakWord bool
	Text      string
	Lines     []TextLine

	// Resolved outputs.
	ResolvedWidth  float64
	ResolvedHeight float64
	X, Y           float64

	// Transient, set during the width/height percent passes and consumed
	// one pass later by the corresponding grow pass. Kept as two booleans
	// rather than one because the width and height passes run to
	// completion independently; a single shared flag would conflate a
	// node that is Percent on one axis and Fit/Fixed on the other.
	deferredPercentUnderGrowWidth  bool
	deferredPercentUnderGrowHeight bool
}

// Dimensions returns the node's resolved width/height.
func (n *Node) Dimensions() Dimensions {
	return Dimensions{Width: n.ResolvedWidth, Height: n.ResolvedHeight}
}

// Position returns the node's resolved absolute position.
func (n *Node) Position() Position {
	return Position{X: n.X, Y: n.Y}
}
