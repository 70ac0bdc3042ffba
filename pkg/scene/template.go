package scene

import "maps"

// Template describes a structure of nodes to materialize in one step.
type Template struct {
	Tag      string
	Class    string
	Style    Style
	Attrs    map[string]string
	Children []Template
}

// Build replaces the children of n with the nodes described by ts and
// returns the created top-level nodes.
func (n *Node) Build(ts ...Template) []*Node {
	n.Clear()
	created := make([]*Node, 0, len(ts))
	for _, t := range ts {
		c := t.materialize()
		n.appendChild(c)
		created = append(created, c)
	}
	return created
}

func (t Template) materialize() *Node {
	n := NewNode(t.Tag)
	n.Style = t.Style
	if len(t.Attrs) > 0 {
		n.attrs = maps.Clone(t.Attrs)
	}
	if t.Class != "" {
		n.SetAttr("class", t.Class)
	}
	for _, ct := range t.Children {
		n.appendChild(ct.materialize())
	}
	return n
}

// Classes returns the classes of t's subtree in document order, skipping
// templates without a class.
func (t Template) Classes() []string {
	var out []string
	if t.Class != "" {
		out = append(out, t.Class)
	}
	for _, c := range t.Children {
		out = append(out, c.Classes()...)
	}
	return out
}
