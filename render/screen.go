package render

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray)
	liveStyle       = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	statusStyle     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// ScreenRenderer draws the grid on a full-screen tcell display
type ScreenRenderer struct {
	screen    tcell.Screen
	layout    model.Layout
	gridLines bool
	status    []string
}

// NewScreenRenderer initializes screen and draws cells of the given layout on it.
// With gridLines set, each cell is framed and its fill starts one column and one row in.
func NewScreenRenderer(screen tcell.Screen, layout model.Layout, gridLines bool) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.SetStyle(backgroundStyle)
	screen.HideCursor()
	screen.Clear()

	return &ScreenRenderer{
		screen:    screen,
		layout:    layout,
		gridLines: gridLines,
	}, nil
}

func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
}

// Status keeps lines to be drawn under the grid on the next Draw
func (r *ScreenRenderer) Status(lines ...string) {
	r.status = append(r.status[:0], lines...)
}

// Draw paints grid lines, live cells, and status text, then shows the frame
func (r *ScreenRenderer) Draw(d model.DrawData) error {
	n := d.Size()
	if r.gridLines {
		r.drawLines(n)
	}

	fillX, fillY := 0, 0
	if r.gridLines {
		fillX, fillY = 1, 1
	}
	for index := range n * n {
		if !d.Alive(index) {
			continue
		}
		x, y := r.layout.Offset(n, index)
		for dy := fillY; dy < r.layout.CellHeight; dy++ {
			for dx := fillX; dx < r.layout.CellWidth; dx++ {
				r.screen.SetContent(x+dx, y+dy, ' ', nil, liveStyle)
			}
		}
	}

	_, height := r.layout.Extent(n)
	if r.gridLines {
		height++
	}
	for i, line := range r.status {
		drawText(r.screen, 0, height+1+i, line)
	}

	r.screen.Show()
	return nil
}

// drawLines draws one vertical and one horizontal line per cell plus the closing line at each far edge
func (r *ScreenRenderer) drawLines(n int) {
	xs := r.layout.VerticalLines(n)
	ys := r.layout.HorizontalLines(n)
	width, height := r.layout.Extent(n)

	for _, x := range xs {
		for y := 0; y <= height; y++ {
			r.screen.SetContent(x, y, tcell.RuneVLine, nil, backgroundStyle)
		}
	}
	for _, y := range ys {
		for x := 0; x <= width; x++ {
			r.screen.SetContent(x, y, tcell.RuneHLine, nil, backgroundStyle)
		}
	}
	for _, y := range ys {
		for _, x := range xs {
			r.screen.SetContent(x, y, tcell.RunePlus, nil, backgroundStyle)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
}

// WatchInput blocks until the user presses q, Esc or Ctrl-C, returning
// ErrQuit, or until ctx is done, returning nil.
func (r *ScreenRenderer) WatchInput(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go r.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return ErrQuit
				}
			case *tcell.EventResize:
				r.screen.Sync()
			}
		}
	}
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
