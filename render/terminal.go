package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer prints the grid as text, one row per line
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out, "Error clearing terminal:", err)
	}
}

// Status prints each line followed by a blank separator line
func (r *TerminalRenderer) Status(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out)
}

// Draw renders the grid to the terminal
func (r *TerminalRenderer) Draw(d model.DrawData) error {
	w := bufio.NewWriter(r.out)
	n := d.Size()
	for index := range n * n {
		if d.Alive(index) {
			w.WriteString(gridPosBlock)
		} else {
			w.WriteString(gridPosEmpty)
		}
		if index%n == n-1 {
			w.WriteByte('\n')
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Draw] failed to write grid")
	}
	return nil
}

func (r *TerminalRenderer) Close() {}
