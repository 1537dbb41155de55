// Command demo exercises the full boxel pipeline — Begin, AddBox/AddText,
// End, and the resulting command list — against a real terminal backend,
// proving the engine's draw-list contract against a collaborator rather
// than just asserting it in tests.
package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/term"

	"github.com/nyborg/boxel"
	"github.com/nyborg/boxel/ansihost"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	width, height := 80, 24
	if fd := os.Stdout.Fd(); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
	}

	cmds, err := buildFrame(width, height)
	if err != nil {
		return err
	}

	t := uv.DefaultTerminal()
	if err := t.Start(); err != nil {
		return err
	}
	t.EnterAltScreen()
	defer t.Shutdown(context.Background())

	draw(t, cmds)
	if err := t.Display(); err != nil {
		return err
	}

	time.Sleep(2 * time.Second)
	return nil
}

// buildFrame lays out a header bar over a two-column body: a fixed-width
// sidebar and a Grow content pane holding wrapped text.
func buildFrame(width, height int) ([]boxel.Command, error) {
	ctx := boxel.NewContext(float64(width), float64(height))
	ctx.SetMeasurementFunction(ansihost.Measure())
	ctx.Begin()

	err := ctx.AddBox(boxel.NodeConfig{
		Width:     boxel.FixedSize(float64(width)),
		Height:    boxel.FixedSize(float64(height)),
		Direction: boxel.TopToBottom,
	}, func() {
		ctx.AddBox(boxel.NodeConfig{
			Width:   boxel.GrowSize(0, 0),
			Height:  boxel.FixedSize(1),
			Color:   boxel.RGB(30, 30, 80),
			Padding: boxel.PaddingXY(1, 0),
		}, func() {
			ctx.AddText("boxel demo", boxel.TextConfig{
				Width: boxel.GrowSize(0, 0),
				Color: boxel.RGB(255, 255, 255),
			})
		})

		ctx.AddBox(boxel.NodeConfig{
			Width:     boxel.GrowSize(0, 0),
			Height:    boxel.GrowSize(0, 0),
			Direction: boxel.LeftToRight,
			ChildGap:  1,
		}, func() {
			ctx.AddBox(boxel.NodeConfig{
				Width:  boxel.FixedSize(20),
				Height: boxel.GrowSize(0, 0),
				Color:  boxel.RGB(20, 20, 20),
			}, nil)

			ctx.AddBox(boxel.NodeConfig{
				Width:   boxel.GrowSize(0, 0),
				Height:  boxel.GrowSize(0, 0),
				Padding: boxel.PaddingAll(1),
			}, func() {
				ctx.AddText(
					"boxel resolves a tree of Fit/Fixed/Grow/Percent boxes into pixel positions and a flat draw list; this line wraps against the pane it was given.",
					boxel.TextConfig{
						Width:     boxel.PercentSize(1),
						BreakWord: true,
						Color:     boxel.RGB(200, 200, 200),
					},
				)
			})
		})
	})
	if err != nil {
		return nil, err
	}

	return ctx.End()
}

func draw(t *uv.Terminal, cmds []boxel.Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case boxel.Rectangle:
			drawRect(t, c)
		case boxel.Text:
			drawText(t, c)
		}
	}
}

func drawRect(t *uv.Terminal, r boxel.Rectangle) {
	bg := toRGBA(r.Color)
	for y := 0; y < int(r.Dimensions.Height); y++ {
		for x := 0; x < int(r.Dimensions.Width); x++ {
			t.SetCell(int(r.Position.X)+x, int(r.Position.Y)+y, &uv.Cell{
				Content: " ",
				Width:   1,
				Style:   uv.Style{Bg: bg},
			})
		}
	}
}

func drawText(t *uv.Terminal, tx boxel.Text) {
	fg := toRGBA(tx.Color)
	x := int(tx.Position.X)
	y := int(tx.Position.Y)
	for _, r := range tx.Text {
		t.SetCell(x, y, &uv.Cell{
			Content: string(r),
			Width:   1,
			Style:   uv.Style{Fg: fg},
		})
		x++
	}
}

func toRGBA(c boxel.Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
