package session

import (
	"fmt"
	"strings"

	"github.com/esimov/pixpaint"
)

// Action is a UI event translated into canvas-local terms.
// The concrete types below form a closed set consumed by Session.Dispatch.
type Action interface {
	action()
}

// SetBackground replaces the canvas with a freshly filled one.
type SetBackground struct {
	Color pixpaint.Color
}

// PointerDown is a pointer press at a canvas-local coordinate.
type PointerDown struct {
	Point pixpaint.Point
}

// PointerDrag is a pointer motion with a button held.
type PointerDrag struct {
	Point pixpaint.Point
}

// PointerMove is a pointer motion without any button held.
type PointerMove struct {
	Point pixpaint.Point
}

// Quit terminates the event loop.
type Quit struct{}

func (SetBackground) action() {}
func (PointerDown) action()   {}
func (PointerDrag) action()   {}
func (PointerMove) action()   {}
func (Quit) action()          {}

// Tool selects what a pointer press paints.
type Tool int

const (
	// ToolRadial paints an additive radial light on press.
	ToolRadial Tool = iota
	// ToolStamp paints a square stamp on press.
	ToolStamp
)

func (t Tool) String() string {
	switch t {
	case ToolRadial:
		return "radial"
	case ToolStamp:
		return "stamp"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool converts a tool name to a Tool.
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(name) {
	case "radial":
		return ToolRadial, nil
	case "stamp":
		return ToolStamp, nil
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}
