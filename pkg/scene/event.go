package scene

import (
	"fmt"
	"time"
)

// EventType names a host event.
type EventType string

const (
	// EventMeasure fires once a region's pixel box is known.
	EventMeasure EventType = "measure"
	// EventDraw fires after every region of the redraw has been measured.
	EventDraw EventType = "draw"
)

// Detail is the payload of measure and draw events.
type Detail struct {
	Width      float64
	Height     float64
	PixelRatio float64
	// Resized is true when the box differs from the previous measure.
	Resized bool
}

// Event is delivered to listeners registered with Node.On.
type Event struct {
	Type   EventType
	Detail Detail
	Target *Node
}

// Listener handles an event. A returned error aborts the flush.
type Listener func(ev Event) error

// Transition is an animation context shared by every region drawn in the
// same render, so that they animate in lockstep.
type Transition struct {
	Name     string
	Duration time.Duration
	Delay    time.Duration
	Ease     string
}

// Active reports whether t describes a running animation.
func (t *Transition) Active() bool { return t != nil && t.Duration > 0 }

// CSS returns the transition declaration applied to drawn content.
func (t *Transition) CSS() string {
	if !t.Active() {
		return ""
	}
	ease := t.Ease
	if ease == "" {
		ease = "ease-in-out"
	}
	return fmt.Sprintf("transition: all %dms %s %dms", t.Duration.Milliseconds(), ease, t.Delay.Milliseconds())
}

// Selection is a set of nodes to render into, optionally carrying the
// transition that the render belongs to.
type Selection struct {
	Nodes      []*Node
	Transition *Transition
}

// Select returns a selection of nodes with no transition.
func Select(nodes ...*Node) Selection {
	return Selection{Nodes: nodes}
}

// WithTransition returns a copy of s carrying t.
func (s Selection) WithTransition(t *Transition) Selection {
	s.Transition = t
	return s
}
