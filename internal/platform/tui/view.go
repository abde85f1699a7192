package tui

import (
	"fmt"

	"github.com/glidekit/flaptui/internal/engine"
)

// The engine simulates in virtual pixels; one terminal cell covers an 8x16 px
// patch, roughly the aspect ratio of a terminal font.
const (
	cellPxW = 8.0
	cellPxH = 16.0
)

// PlayfieldFor converts a terminal size to virtual pixel dimensions.
func PlayfieldFor(cols, rows int) (w, h float64) {
	return float64(cols) * cellPxW, float64(rows) * cellPxH
}

// Glyphs. The body block gets a nose marker whose shape follows the
// orientation angle.
const (
	bodyChar      = '●'
	noseUpChar    = '◥'
	noseLevelChar = '▶'
	noseDownChar  = '◢'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundLine    = '═'
	groundFill    = '░'
)

// drawSnapshot renders one engine snapshot into the canvas.
func drawSnapshot(c *Canvas, snap engine.Snapshot) {
	c.Clear()

	drawGround(c, snap)
	for _, p := range snap.Pipes {
		drawPipe(c, snap, p)
	}
	drawBody(c, snap.Body)
	drawHUD(c, snap)
}

func drawGround(c *Canvas, snap engine.Snapshot) {
	top := int(snap.GroundY / cellPxH)
	for x := 0; x < c.Width(); x++ {
		c.Set(x, top, groundLine, ColorGray)
	}
	for y := top + 1; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			c.Set(x, y, groundFill, ColorGray)
		}
	}
}

func drawPipe(c *Canvas, snap engine.Snapshot, p engine.Pipe) {
	left := int(p.X / cellPxW)
	right := int((p.X + snap.PipeWidth) / cellPxW)
	gapTop := int(p.Top / cellPxH)
	gapBottom := int(p.Bottom / cellPxH)
	groundTop := int(snap.GroundY / cellPxH)

	for x := left; x < right; x++ {
		for y := 0; y < gapTop; y++ {
			c.Set(x, y, pipeChar, ColorGreen)
		}
		if gapTop > 0 {
			c.Set(x, gapTop-1, pipeCapTop, ColorGreen)
		}
		if gapBottom < groundTop {
			c.Set(x, gapBottom, pipeCapBottom, ColorGreen)
		}
		for y := gapBottom + 1; y < groundTop; y++ {
			c.Set(x, y, pipeChar, ColorGreen)
		}
	}
}

func drawBody(c *Canvas, b engine.Body) {
	left := int((b.X - b.Radius) / cellPxW)
	right := int((b.X + b.Radius) / cellPxW)
	top := int((b.Y - b.Radius) / cellPxH)
	bottom := int((b.Y + b.Radius) / cellPxH)

	col := ColorYellow
	if !b.Alive {
		col = ColorRed
	}
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			c.Set(x, y, bodyChar, col)
		}
	}

	nose := noseLevelChar
	switch {
	case b.Angle > 0.2:
		nose = noseUpChar
	case b.Angle < -0.6:
		nose = noseDownChar
	}
	c.Set(right, (top+bottom)/2, nose, col)
}

func drawHUD(c *Canvas, snap engine.Snapshot) {
	c.Text(2, 0, fmt.Sprintf(" Score: %d   Best: %d ", snap.Score, snap.Best), ColorWhite)

	switch {
	case snap.Paused:
		drawCenteredMessage(c, "PAUSED", "press p to resume")
	case snap.Phase == engine.PhaseIdle:
		drawCenteredMessage(c, "FLAP", "press space to start")
	case snap.Phase == engine.PhaseEnded:
		title := "GAME OVER"
		if snap.Score > 0 && snap.Score >= snap.Best {
			title = "GAME OVER - NEW BEST!"
		}
		sub := fmt.Sprintf("score %d  |  r retry, tab scores, q quit", snap.Score)
		drawCenteredMessage(c, title, sub)
	}
}

func drawCenteredMessage(c *Canvas, title, subtitle string) {
	boxW := len(title)
	if len(subtitle) > boxW {
		boxW = len(subtitle)
	}
	boxW += 4
	boxH := 5
	boxX := (c.Width() - boxW) / 2
	boxY := (c.Height() - boxH) / 2

	c.Box(boxX, boxY, boxW, boxH, ColorCyan)
	c.Text(boxX+(boxW-len(title))/2, boxY+1, title, ColorWhite)
	c.Text(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, ColorGray)
}
