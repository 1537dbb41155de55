package boxel

// Command is one entry in the ordered draw list End returns. It is a closed
// set — Rectangle and Text are emitted today; Image, Border, and Custom are
// reserved variants the engine does not yet produce but a host's renderer
// may still want to switch on exhaustively.
type Command interface {
	isCommand()
}

// Rectangle is emitted once per Box node.
type Rectangle struct {
	Position   Position
	Dimensions Dimensions
	Color      Color
}

func (Rectangle) isCommand() {}

// Text is emitted once per wrapped line of a Text node, positioned by the
// line's intra-node y offset added to the node's resolved position.
type Text struct {
	Position Position
	Text     string
	FontID   uint32
	FontSize uint16
	Color    Color
}

func (Text) isCommand() {}

// Image is reserved; the engine never emits it.
type Image struct {
	Position   Position
	Dimensions Dimensions
	Source     string
}

func (Image) isCommand() {}

// Border is reserved; the engine never emits it.
type Border struct {
	Position   Position
	Dimensions Dimensions
	Color      Color
	Thickness  float64
}

func (Border) isCommand() {}

// Custom is reserved for host-defined draw operations; the engine never
// emits it.
type Custom struct {
	Position Position
	Payload  any
}

func (Custom) isCommand() {}

// emitCommands walks postOrder in reverse — parents before descendants,
// and siblings in the opposite order of insertion — and returns one
// Rectangle per Box and one Text per wrapped line. This ordering is a
// contract consumers depend on, not an implementation detail. The implicit
// root, always the last entry of postOrder, is excluded.
func emitCommands(postOrder []*Node, root *Node) []Command {
	commands := make([]Command, 0, len(postOrder))
	for i := len(postOrder) - 1; i >= 0; i-- {
		node := postOrder[i]
		if node == root {
			continue
		}
		switch node.Kind {
		case BoxKind:
			commands = append(commands, Rectangle{
				Position:   node.Position(),
				Dimensions: node.Dimensions(),
				Color:      node.Color,
			})
		case TextKind:
			for _, line := range node.Lines {
				commands = append(commands, Text{
					Position: Position{X: node.X, Y: node.Y + line.Y},
					Text:     line.Text,
					FontID:   node.FontID,
					FontSize: node.FontSize,
					Color:    node.FontColor,
				})
			}
		}
	}
	return commands
}
