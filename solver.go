package boxel

import "sort"

// axis selects which of a node's two sizing descriptors / resolved
// dimensions a pass operates over. Seven of the eight passes are fit,
// percent and grow run once per axis, plus wrap (width only); the eighth,
// positioning, handles both axes at once. Sharing one axis-generic implementation for fit/percent/grow keeps the
// width and height passes from drifting out of sync with each other.
type axis int

const (
	axisWidth axis = iota
	axisHeight
)

func sizingOf(n *Node, ax axis) Sizing {
	if ax == axisWidth {
		return n.Width
	}
	return n.Height
}

func resolvedOf(n *Node, ax axis) float64 {
	if ax == axisWidth {
		return n.ResolvedWidth
	}
	return n.ResolvedHeight
}

func setResolvedOf(n *Node, ax axis, v float64) {
	if ax == axisWidth {
		n.ResolvedWidth = v
	} else {
		n.ResolvedHeight = v
	}
}

func paddingStartOf(n *Node, ax axis) float64 {
	if ax == axisWidth {
		return n.Padding.Left
	}
	return n.Padding.Top
}

func paddingEndOf(n *Node, ax axis) float64 {
	if ax == axisWidth {
		return n.Padding.Right
	}
	return n.Padding.Bottom
}

func deferredFlagOf(n *Node, ax axis) bool {
	if ax == axisWidth {
		return n.deferredPercentUnderGrowWidth
	}
	return n.deferredPercentUnderGrowHeight
}

func setDeferredFlagOf(n *Node, ax axis, v bool) {
	if ax == axisWidth {
		n.deferredPercentUnderGrowWidth = v
	} else {
		n.deferredPercentUnderGrowHeight = v
	}
}

// isMainAxis reports whether ax is the main (layout) axis for a Box with
// the given direction — width for LeftToRight, height for TopToBottom. The
// other axis is that Box's cross axis.
func isMainAxis(dir LayoutDirection, ax axis) bool {
	return (ax == axisWidth && dir == LeftToRight) || (ax == axisHeight && dir == TopToBottom)
}

// bottomUp iterates the post-order list front to back: children before
// parents.
func bottomUp(nodes []*Node) []*Node { return nodes }

// topDown iterates the post-order list back to front: parents before
// children. There are no parent pointers on Node; passes that need a
// parent's already-resolved size rely on visiting that parent earlier in
// this same reverse sweep and read it back off the parent's own fields.
func topDown(nodes []*Node) []*Node {
	rev := make([]*Node, len(nodes))
	for i, n := range nodes {
		rev[len(nodes)-1-i] = n
	}
	return rev
}

// runSolver executes the eight fixed passes over postOrder, which must end
// with the implicit root as its last element.
func runSolver(postOrder []*Node, measure MeasureFunc, cache *MeasurementCache) {
	fitPass(postOrder, axisWidth)
	percentPass(postOrder, axisWidth)
	growPass(postOrder, axisWidth)
	wrapPass(postOrder, measure, cache)
	fitPass(postOrder, axisHeight)
	percentPass(postOrder, axisHeight)
	growPass(postOrder, axisHeight)
	positionPass(postOrder)
}

// fitPass is passes 1 and 5: bottom-up, resolves Box nodes whose sizing on
// ax is Fit, and fills in the Fit-with-positive-minimum case for Text.
func fitPass(postOrder []*Node, ax axis) {
	for _, n := range bottomUp(postOrder) {
		s := sizingOf(n, ax)
		switch n.Kind {
		case BoxKind:
			if !s.IsFit() {
				continue
			}
			var size float64
			if isMainAxis(n.Direction, ax) {
				for _, c := range n.Children {
					size += resolvedOf(c, ax)
				}
				if len(n.Children) > 1 {
					size += float64(len(n.Children)-1) * n.ChildGap
				}
			} else {
				for _, c := range n.Children {
					if cs := resolvedOf(c, ax); cs > size {
						size = cs
					}
				}
			}
			size += paddingStartOf(n, ax) + paddingEndOf(n, ax)
			if s.MinSize() > size {
				size = s.MinSize()
			}
			setResolvedOf(n, ax, size)
		case TextKind:
			if s.IsFit() && s.MinSize() > 0 {
				setResolvedOf(n, ax, s.MinSize())
			}
		}
	}
}

// percentResolve computes a Percent child's size against its parent's
// already-known size on ax, applying the endpoint padding and main-axis
// gap apportionment shared by pass 2/6 and by the deferred resolution step
// in pass 3/7.
func percentResolve(parent, child *Node, i, n int, ax axis) float64 {
	s := sizingOf(child, ax)
	val := resolvedOf(parent, ax) * s.Percent()
	if i == 0 {
		val -= paddingStartOf(parent, ax)
	}
	if i == n-1 {
		val -= paddingEndOf(parent, ax)
	}
	if isMainAxis(parent.Direction, ax) && n > 1 {
		if i == 0 || i == n-1 {
			val -= parent.ChildGap / 2
		} else {
			val -= parent.ChildGap
		}
	}
	return val
}

// percentPass is passes 2 and 6: top-down, resolves Percent children of
// Box parents whose own size on ax is already known. A Percent child of a
// Grow parent cannot be resolved yet — its own width/height descriptor is
// read here but its parent's size on ax is not settled until growPass, so
// it is marked deferred and picked up there instead. Because deferredFlagOf
// is tracked per axis, resolving it here against sizingOf(child, ax) always
// reads the correct (width or height) descriptor — this is the fix for the
// source's pass-6 bug, which dereferenced the width descriptor while
// resolving a deferred percent under a Grow height parent.
func percentPass(postOrder []*Node, ax axis) {
	for _, parent := range topDown(postOrder) {
		if parent.Kind != BoxKind {
			continue
		}
		n := len(parent.Children)
		parentIsGrow := sizingOf(parent, ax).IsGrow()
		for i, child := range parent.Children {
			if !sizingOf(child, ax).IsPercent() {
				continue
			}
			if parentIsGrow {
				setDeferredFlagOf(child, ax, true)
				continue
			}
			setResolvedOf(child, ax, percentResolve(parent, child, i, n, ax))
		}
	}
}

// growPass is passes 3 and 7: top-down. First resolves any child still
// marked deferred from percentPass (now possible, since this parent's own
// size on ax is settled by the time growPass visits it — either it was
// never Grow, or it was resolved earlier in this same sweep by its own
// parent). Then distributes remaining space among Grow children.
func growPass(postOrder []*Node, ax axis) {
	for _, parent := range topDown(postOrder) {
		if parent.Kind != BoxKind {
			continue
		}
		n := len(parent.Children)
		for i, child := range parent.Children {
			if !deferredFlagOf(child, ax) {
				continue
			}
			s := sizingOf(child, ax)
			if !s.IsPercent() {
				invariantViolation("deferred-percent child %d has non-percent descriptor on this axis", child.ID)
			}
			setResolvedOf(child, ax, percentResolve(parent, child, i, n, ax))
			setDeferredFlagOf(child, ax, false)
		}

		if isMainAxis(parent.Direction, ax) {
			distributeMainAxisGrow(parent, ax)
		} else {
			distributeCrossAxisGrow(parent, ax)
		}
	}
}

// distributeMainAxisGrow implements pass 3/7's sharing algorithm for Grow
// children along the parent's main axis.
func distributeMainAxisGrow(parent *Node, ax axis) {
	remaining := resolvedOf(parent, ax) - paddingStartOf(parent, ax) - paddingEndOf(parent, ax)
	n := len(parent.Children)
	if n > 1 {
		remaining -= float64(n-1) * parent.ChildGap
	}

	var growChildren []*Node
	for _, c := range parent.Children {
		if sizingOf(c, ax).IsGrow() {
			growChildren = append(growChildren, c)
		} else {
			remaining -= resolvedOf(c, ax)
		}
	}
	if len(growChildren) == 0 {
		return
	}

	widths := make([]float64, len(growChildren))
	maxes := make([]float64, len(growChildren))
	for i, c := range growChildren {
		widths[i] = resolvedOf(c, ax)
		maxes[i] = sizingOf(c, ax).MaxSize()
	}
	distributeGrow(widths, maxes, remaining)
	for i, c := range growChildren {
		setResolvedOf(c, ax, widths[i])
	}
}

// distributeCrossAxisGrow implements pass 3/7's note that Grow children
// sharing a cross-axis parent each receive the full remaining space
// directly, rather than dividing it among themselves.
func distributeCrossAxisGrow(parent *Node, ax axis) {
	remaining := resolvedOf(parent, ax) - paddingStartOf(parent, ax) - paddingEndOf(parent, ax)
	for _, c := range parent.Children {
		s := sizingOf(c, ax)
		if !s.IsGrow() {
			continue
		}
		val := remaining
		if m := s.MaxSize(); m > 0 && val > m {
			val = m
		}
		setResolvedOf(c, ax, val)
	}
}

// distributeGrow mutates widths in place, raising each entry from its
// current (>= min) value toward remaining, honoring the per-entry max clamp
// in maxes (0 == unbounded). It repeatedly raises the currently-smallest
// tied group of entries up to the next distinct size, honoring clamps and
// re-crediting any unspent cost back into remaining, as long as raising
// the whole group costs no more than what's left. Once raising the group
// further is unaffordable (or there is no next tier at all, i.e. the group
// is everyone still active), the remainder is split evenly across just
// that group — never across entries outside it, which must wait their
// turn at the now-lower tier they're tied at.
func distributeGrow(widths, maxes []float64, remaining float64) {
	const epsilon = 1e-9

	active := make([]int, len(widths))
	for i := range active {
		active[i] = i
	}

	pruneMaxed := func(ids []int) []int {
		next := ids[:0]
		for _, idx := range ids {
			if m := maxes[idx]; m > 0 && widths[idx] >= m-epsilon {
				continue
			}
			next = append(next, idx)
		}
		return next
	}

	for remaining > epsilon && len(active) > 0 {
		sort.Slice(active, func(a, b int) bool { return widths[active[a]] < widths[active[b]] })

		smallest := widths[active[0]]
		groupEnd := 1
		for groupEnd < len(active) && widths[active[groupEnd]] == smallest {
			groupEnd++
		}
		group := active[:groupEnd]

		hasNextTier := groupEnd < len(active)
		var costToRaiseGroup float64
		if hasNextTier {
			costToRaiseGroup = (widths[active[groupEnd]] - smallest) * float64(len(group))
		}

		if hasNextTier && costToRaiseGroup <= remaining {
			nextTier := widths[active[groupEnd]]
			spent := 0.0
			for _, idx := range group {
				target := nextTier
				if m := maxes[idx]; m > 0 && target > m {
					target = m
				}
				spent += target - widths[idx]
				widths[idx] = target
			}
			remaining -= spent
			active = pruneMaxed(active)
			continue
		}

		// Can't afford to raise the whole tied group to the next tier (or
		// there is no next tier): split remaining evenly across just the
		// group. A member that clamps mid-split gives its unspent share
		// back, which is re-split across whoever in the group is left,
		// mirroring the re-entry above on a clamp.
		splitGroup := append([]int(nil), group...)
		exhausted := false
		for len(splitGroup) > 0 && remaining > epsilon {
			share := remaining / float64(len(splitGroup))
			var unclamped []int
			spent := 0.0
			for _, idx := range splitGroup {
				target := widths[idx] + share
				if m := maxes[idx]; m > 0 && target > m {
					spent += m - widths[idx]
					widths[idx] = m
					continue
				}
				unclamped = append(unclamped, idx)
			}
			if len(unclamped) == len(splitGroup) {
				for _, idx := range unclamped {
					widths[idx] += share
				}
				break
			}
			remaining -= spent
			splitGroup = unclamped
			exhausted = len(splitGroup) == 0
		}

		if exhausted && remaining > epsilon {
			active = pruneMaxed(active)
			continue
		}
		break
	}
}

// positionPass is pass 8: top-down. For each Box parent, places its
// children along the main axis starting from an alignment-dependent
// coordinate and walking forward by each child's main size plus the gap,
// then places each child individually on the cross axis by its own
// alignment.
func positionPass(postOrder []*Node) {
	for _, parent := range topDown(postOrder) {
		if parent.Kind != BoxKind || len(parent.Children) == 0 {
			continue
		}

		mainAx, crossAx := axisWidth, axisHeight
		if parent.Direction == TopToBottom {
			mainAx, crossAx = axisHeight, axisWidth
		}

		n := len(parent.Children)
		childBBox := 0.0
		for _, c := range parent.Children {
			childBBox += resolvedOf(c, mainAx)
		}
		if n > 1 {
			childBBox += float64(n-1) * parent.ChildGap
		}

		mainStart := mainAxisStart(parent, mainAx, childBBox)

		offset := 0.0
		for _, c := range parent.Children {
			mainPos := mainStart + offset
			crossPos := crossAxisStart(parent, crossAx, c)

			if mainAx == axisWidth {
				c.X, c.Y = mainPos, crossPos
			} else {
				c.X, c.Y = crossPos, mainPos
			}

			offset += resolvedOf(c, mainAx) + parent.ChildGap
		}
	}
}

func mainAxisStart(parent *Node, mainAx axis, childBBox float64) float64 {
	parentPos := axisPos(parent, mainAx)
	parentSize := resolvedOf(parent, mainAx)
	start := paddingStartOf(parent, mainAx)
	end := paddingEndOf(parent, mainAx)

	align := alignmentForAxis(parent, mainAx)
	switch align {
	case alignStart:
		return parentPos + start
	case alignCenter:
		return parentPos + (parentSize-childBBox-start-end)/2
	default: // alignEnd
		return parentPos + parentSize - childBBox - end
	}
}

func crossAxisStart(parent *Node, crossAx axis, child *Node) float64 {
	parentPos := axisPos(parent, crossAx)
	parentSize := resolvedOf(parent, crossAx)
	start := paddingStartOf(parent, crossAx)
	end := paddingEndOf(parent, crossAx)
	childSize := resolvedOf(child, crossAx)

	align := alignmentForAxis(parent, crossAx)
	switch align {
	case alignStart:
		return parentPos + start
	case alignCenter:
		return parentPos + (parentSize-childSize-start-end)/2
	default: // alignEnd
		return parentPos + parentSize - childSize - end
	}
}

func axisPos(n *Node, ax axis) float64 {
	if ax == axisWidth {
		return n.X
	}
	return n.Y
}

// edgeAlignment is an axis-neutral view of HorizontalAlignment/
// VerticalAlignment so positionPass's start/center/end math doesn't need
// to branch on which concrete enum a given axis carries.
type edgeAlignment int

const (
	alignStart edgeAlignment = iota
	alignCenter
	alignEnd
)

// alignmentForAxis reads whichever of AlignH/AlignV applies to ax, used for
// both a parent's main-axis alignment and its cross-axis alignment — which
// concrete enum applies depends only on the axis, not on which role it's
// playing for a given child.
func alignmentForAxis(parent *Node, ax axis) edgeAlignment {
	if ax == axisWidth {
		return horizontalToEdge(parent.AlignH)
	}
	return verticalToEdge(parent.AlignV)
}

func horizontalToEdge(a HorizontalAlignment) edgeAlignment {
	switch a {
	case AlignCenterH:
		return alignCenter
	case AlignRight:
		return alignEnd
	default:
		return alignStart
	}
}

func verticalToEdge(a VerticalAlignment) edgeAlignment {
	switch a {
	case AlignCenterV:
		return alignCenter
	case AlignBottom:
		return alignEnd
	default:
		return alignStart
	}
}
