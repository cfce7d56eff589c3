package render

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrQuit is returned by an input watcher when the user asks to exit
var ErrQuit = errors.New("quit requested")

// Renderer draws the current generation of a grid
type Renderer interface {
	// Clear blanks the display before a new frame
	Clear()
	// Status writes informational lines for the frame
	Status(lines ...string)
	// Draw renders every live cell of d and presents the frame
	Draw(d model.DrawData) error
	// Close releases the display
	Close()
}
