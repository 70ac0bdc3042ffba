package scene

import (
	"slices"
	"strings"
)

// Element tags understood by the host.
const (
	// TagGroup is a layout container that redraws its surfaces together.
	TagGroup = "group"
	// TagDiv is a plain layout box.
	TagDiv = "div"
	// TagSVGSurface is a drawing region. It owns an inner <svg> child that
	// receives drawn content and is sized to the region on every flush.
	TagSVGSurface = "svg-surface"
	// TagSVG is the inner drawing element of a surface.
	TagSVG = "svg"
)

// Box is the computed pixel box of a node in document coordinates.
type Box struct {
	X, Y, Width, Height float64
}

// Node is an element of the scene tree. Layout nodes carry a Style and get
// a computed Box; nodes below a surface's <svg> are drawn content and are
// serialized verbatim.
type Node struct {
	Tag   string
	Style Style
	Text  string
	Datum any

	key       string
	attrs     map[string]string
	children  []*Node
	parent    *Node
	listeners map[EventType]Listener

	box      Box
	lastBox  Box
	measured bool
	redraw   bool
}

// NewNode creates a detached node. Surfaces get their inner svg element.
func NewNode(tag string) *Node {
	n := &Node{Tag: tag}
	if tag == TagSVGSurface {
		n.appendChild(&Node{Tag: TagSVG})
	}
	return n
}

// Append creates a node with the given tag as the last child of n.
func (n *Node) Append(tag string) *Node {
	c := NewNode(tag)
	n.appendChild(c)
	return c
}

func (n *Node) appendChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// Clear removes all children of n.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Children returns the child nodes of n. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the parent of n, or nil for a detached or root node.
func (n *Node) Parent() *Node { return n.parent }

// Attr returns the value of attribute k.
func (n *Node) Attr(k string) string { return n.attrs[k] }

// HasAttr reports whether attribute k is set.
func (n *Node) HasAttr(k string) bool {
	_, ok := n.attrs[k]
	return ok
}

// SetAttr sets attribute k and returns n.
func (n *Node) SetAttr(k, v string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[k] = v
	return n
}

// RemoveAttr deletes attribute k.
func (n *Node) RemoveAttr(k string) *Node {
	delete(n.attrs, k)
	return n
}

// Attrs returns the attribute names of n in sorted order.
func (n *Node) Attrs() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Class returns the class attribute.
func (n *Node) Class() string { return n.attrs["class"] }

// HasClass reports whether the class attribute contains c.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(strings.Fields(n.attrs["class"]), c)
}

// SetText sets the text content and returns n.
func (n *Node) SetText(s string) *Node {
	n.Text = s
	return n
}

// Box returns the box computed by the most recent layout.
func (n *Node) Box() Box { return n.box }

// matches reports whether n matches a simple selector: "tag", ".class" or
// "tag.class".
func (n *Node) matches(sel string) bool {
	tag, class, _ := strings.Cut(sel, ".")
	if tag != "" && n.Tag != tag {
		return false
	}
	if class != "" && !n.HasClass(class) {
		return false
	}
	return true
}

// Select returns the first descendant of n matching sel, in document order,
// or nil.
func (n *Node) Select(sel string) *Node {
	var found *Node
	n.walkDescendants(func(c *Node) bool {
		if c.matches(sel) {
			found = c
			return false
		}
		return true
	})
	return found
}

// SelectAll returns every descendant of n matching sel, in document order.
func (n *Node) SelectAll(sel string) []*Node {
	var found []*Node
	n.walkDescendants(func(c *Node) bool {
		if c.matches(sel) {
			found = append(found, c)
		}
		return true
	})
	return found
}

// Walk visits n and its descendants in document order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	n.walk(fn)
}

func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

func (n *Node) walkDescendants(fn func(*Node) bool) {
	for _, c := range n.children {
		if !c.walk(fn) {
			return
		}
	}
}

// On registers l for events of type t, replacing any previous listener of
// that type. A nil listener removes the registration.
func (n *Node) On(t EventType, l Listener) *Node {
	if l == nil {
		delete(n.listeners, t)
		return n
	}
	if n.listeners == nil {
		n.listeners = make(map[EventType]Listener)
	}
	n.listeners[t] = l
	return n
}

// Listens reports whether n has a listener for t.
func (n *Node) Listens(t EventType) bool {
	_, ok := n.listeners[t]
	return ok
}

// Dispatch invokes the listener for ev.Type, if any, and returns its error.
func (n *Node) Dispatch(ev Event) error {
	l, ok := n.listeners[ev.Type]
	if !ok {
		return nil
	}
	ev.Target = n
	return l(ev)
}

// RequestRedraw marks the subtree rooted at n for measure and draw on the
// next Document.Flush.
func (n *Node) RequestRedraw() { n.redraw = true }

// RedrawRequested reports whether a redraw is pending for n.
func (n *Node) RedrawRequested() bool { return n.redraw }
