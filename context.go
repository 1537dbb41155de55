package boxel

import "fmt"

// NodeConfig configures a Box at OpenBox/AddBox time. A plain struct
// literal rather than functional options — there is no optional-vs-required
// distinction here that options would earn their ceremony for.
type NodeConfig struct {
	Width           Sizing
	Height          Sizing
	Padding         Padding
	ChildGap        float64
	AlignH          HorizontalAlignment
	AlignV          VerticalAlignment
	Direction       LayoutDirection
	Color           Color
}

// TextConfig configures a Text leaf at AddText time.
type TextConfig struct {
	Width     Sizing
	FontID    uint32
	FontSize  uint16
	Color     Color
	BreakWord bool
}

// Context is a scoped, stack-based builder that records a layout tree in
// source order, once as a live parent stack (for OpenBox/CloseBox
// bracketing) and once as a post-order list (children before parents,
// sibling insertion order preserved) consumed by the solver.
//
// A Context is not safe for concurrent use. This is documented rather than
// enforced with a mutex: locking would only hide a single-frame, single-
// thread misuse behind a lock instead of letting a race detector catch it.
type Context struct {
	rootWidth  float64
	rootHeight float64

	measure MeasureFunc
	cache   *MeasurementCache

	stack     []*Node
	postOrder []*Node
	nextID    uint64
	hasText   bool
}

// NewContext constructs an empty layout context sized to a root viewport.
// rootWidth and rootHeight must be >= 0; a negative viewport is a caller
// bug with no sane recovery, surfaced as an InvariantViolation at Begin.
func NewContext(rootWidth, rootHeight float64) *Context {
	return &Context{
		rootWidth:  rootWidth,
		rootHeight: rootHeight,
		cache:      NewMeasurementCache(),
	}
}

// SetMeasurementFunction installs the text-measurement collaborator. End
// fails with ErrNoMeasurementFunction if a text node is present and none
// was installed.
func (c *Context) SetMeasurementFunction(fn MeasureFunc) {
	c.measure = fn
}

// Begin resets per-frame state and pushes the implicit root node, sized to
// the viewport passed to NewContext.
func (c *Context) Begin() {
	if c.rootWidth < 0 || c.rootHeight < 0 {
		invariantViolation("negative root viewport (%v, %v)", c.rootWidth, c.rootHeight)
	}
	root := &Node{
		ID:             0,
		Kind:           BoxKind,
		Width:          FixedSize(c.rootWidth),
		Height:         FixedSize(c.rootHeight),
		ResolvedWidth:  c.rootWidth,
		ResolvedHeight: c.rootHeight,
	}
	c.stack = []*Node{root}
	c.postOrder = nil
	c.nextID = 1
	c.hasText = false
}

// OpenBox pushes a new Box node as a child of the current top of stack.
// CloseBox attaches it to its parent once its own children have closed.
func (c *Context) OpenBox(cfg NodeConfig) *Node {
	node := &Node{
		ID:        c.nextID,
		Kind:      BoxKind,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Padding:   cfg.Padding,
		ChildGap:  cfg.ChildGap,
		AlignH:    cfg.AlignH,
		AlignV:    cfg.AlignV,
		Direction: cfg.Direction,
		Color:     cfg.Color,
	}
	c.nextID++
	seedBoxWidth(node)
	seedBoxHeight(node)
	c.stack = append(c.stack, node)
	return node
}

// CloseBox attaches the current top-of-stack Box to its parent and appends
// it to the post-order list. Returns ErrUnbalancedTree if there is no
// matching OpenBox left to close (the stack holds only the implicit root).
func (c *Context) CloseBox() error {
	if len(c.stack) <= 1 {
		return fmt.Errorf("%w: closeBox called with no matching openBox", ErrUnbalancedTree)
	}
	node := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	parent := c.stack[len(c.stack)-1]
	parent.Children = append(parent.Children, node)
	c.postOrder = append(c.postOrder, node)
	return nil
}

// AddBox is a convenience wrapper: OpenBox(cfg); inner(); CloseBox().
func (c *Context) AddBox(cfg NodeConfig, inner func()) error {
	c.OpenBox(cfg)
	if inner != nil {
		inner()
	}
	return c.CloseBox()
}

// AddText appends a Text leaf to the current parent. Text nodes never enter
// the stack — they have no open/close bracketing.
func (c *Context) AddText(text string, cfg TextConfig) *Node {
	node := &Node{
		ID:        c.nextID,
		Kind:      TextKind,
		Width:     cfg.Width,
		FontID:    cfg.FontID,
		FontSize:  cfg.FontSize,
		FontColor: cfg.Color,
		BreakWord: cfg.BreakWord,
		Text:      text,
	}
	c.nextID++
	c.hasText = true
	seedTextWidth(node, c.measure, c.cache)

	parent := c.stack[len(c.stack)-1]
	parent.Children = append(parent.Children, node)
	c.postOrder = append(c.postOrder, node)
	return node
}

// End finalizes the layout: checks builder invariants, runs the eight-pass
// solver, and returns the draw list. A failed End yields no draw list —
// there is no partial-success case.
func (c *Context) End() ([]Command, error) {
	if len(c.stack) != 1 {
		return nil, fmt.Errorf("%w: %d node(s) still open", ErrUnbalancedTree, len(c.stack)-1)
	}
	if c.hasText && c.measure == nil {
		return nil, ErrNoMeasurementFunction
	}

	root := c.stack[0]
	c.postOrder = append(c.postOrder, root)

	runSolver(c.postOrder, c.measure, c.cache)

	return emitCommands(c.postOrder, root), nil
}

// seedBoxWidth applies the "initial resolved dimensions at closeBox" rule
// for a Box's width: Fixed resolves immediately, Grow starts at its
// minimum, Percent and Fit are filled in later by the solver.
func seedBoxWidth(n *Node) {
	switch {
	case n.Width.IsFixed():
		n.ResolvedWidth = n.Width.FixedValue()
	case n.Width.IsGrow():
		n.ResolvedWidth = n.Width.MinSize()
	default:
		n.ResolvedWidth = 0
	}
}

func seedBoxHeight(n *Node) {
	switch {
	case n.Height.IsFixed():
		n.ResolvedHeight = n.Height.FixedValue()
	case n.Height.IsGrow():
		n.ResolvedHeight = n.Height.MinSize()
	default:
		n.ResolvedHeight = 0
	}
}

// seedTextWidth applies the addText width-initialization rule: Fixed
// resolves immediately, Grow seeds from measuring the full unwrapped
// string as a single word run, Percent and Fit are filled in later.
func seedTextWidth(n *Node, measure MeasureFunc, cache *MeasurementCache) {
	switch {
	case n.Width.IsFixed():
		n.ResolvedWidth = n.Width.FixedValue()
	case n.Width.IsGrow():
		if measure == nil {
			n.ResolvedWidth = 0
			return
		}
		m := cache.Get(measure, n.Text, n.FontID, n.FontSize)
		n.ResolvedWidth = m.Width
	default:
		n.ResolvedWidth = 0
	}
}
