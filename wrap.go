package boxel

import "strings"

// wrapPass is pass 4: bottom-up, greedy single-pass word wrap for every
// Text node whose BreakWord is set, against its already-resolved width
// from the width passes. Text nodes with BreakWord unset are not wrapped —
// the spec's non-goal is multi-line flow along the main axis, not text
// height at all, so they still get a single line spanning the whole
// string, measured as one run.
func wrapPass(postOrder []*Node, measure MeasureFunc, cache *MeasurementCache) {
	for _, n := range bottomUp(postOrder) {
		if n.Kind != TextKind {
			continue
		}
		if measure == nil {
			continue
		}
		if n.BreakWord {
			wrapWords(n, measure, cache)
		} else {
			wrapSingleLine(n, measure, cache)
		}
	}
}

func wrapSingleLine(n *Node, measure MeasureFunc, cache *MeasurementCache) {
	m := cache.Get(measure, n.Text, n.FontID, n.FontSize)
	n.Lines = []TextLine{{Text: n.Text, Y: m.YOffset}}
	n.ResolvedHeight = m.Height
}

// wrapWords implements pass 4's literal algorithm: tokenize on single
// spaces, accumulate a run until the next token would overflow the node's
// resolved width, flush, and continue.
func wrapWords(n *Node, measure MeasureFunc, cache *MeasurementCache) {
	lineWidth := n.ResolvedWidth
	tokens := strings.Split(n.Text, " ")

	var lines []TextLine
	heightCursor := 0.0

	runWidth := 0.0
	runHeight := 0.0
	runBaselineOffset := 0.0
	var runString strings.Builder

	flush := func() {
		if runString.Len() == 0 {
			return
		}
		lines = append(lines, TextLine{Text: runString.String(), Y: heightCursor + runBaselineOffset})
		heightCursor += runHeight
		runString.Reset()
		runWidth = 0
		runHeight = 0
		runBaselineOffset = 0
	}

	for _, token := range tokens {
		m := cache.Get(measure, token, n.FontID, n.FontSize)

		if m.Width > lineWidth && runString.Len() == 0 {
			lines = append(lines, TextLine{Text: token, Y: heightCursor + m.YOffset})
			heightCursor += m.Height
			continue
		}

		spaceWidth := 0.0
		if runString.Len() > 0 {
			sm := cache.Get(measure, " ", n.FontID, n.FontSize)
			spaceWidth = sm.Width
		}

		if runString.Len() > 0 && runWidth+spaceWidth+m.Width > lineWidth {
			flush()
			spaceWidth = 0
		}

		if runString.Len() > 0 {
			runString.WriteByte(' ')
		}
		runString.WriteString(token)
		runHeight = maxFloat(runHeight, m.Height)
		runBaselineOffset = maxFloat(runBaselineOffset, m.YOffset)
		runWidth += m.Width + spaceWidth
	}
	flush()

	n.Lines = lines
	n.ResolvedHeight = heightCursor
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
