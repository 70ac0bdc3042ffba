package scene

import (
	"slices"
	"strconv"
)

// KeyFunc derives the identity of a datum for a join.
type KeyFunc func(datum any, index int) string

// DataJoin binds a data array to the children of a parent that match
// Element and Class. Existing children are matched by key and updated in
// place, missing ones are created (enter) and unmatched ones are removed
// (exit). Without a Key, children are matched by index.
type DataJoin struct {
	Element string
	Class   string
	Key     KeyFunc
}

// Joined is the outcome of a join.
type Joined struct {
	Enter  []*Node
	Update []*Node
	Exit   []*Node
	nodes  []*Node
}

// Nodes returns the entered and updated nodes in data order.
func (j Joined) Nodes() []*Node { return j.nodes }

// Entered reports whether n was created by the join.
func (j Joined) Entered(n *Node) bool { return slices.Contains(j.Enter, n) }

// Join reconciles data against the matching children of parent. Joined
// nodes are placed in data order at the position of the first matched
// child; unrelated siblings keep their positions.
func (j DataJoin) Join(parent *Node, data []any) Joined {
	key := j.Key
	if key == nil {
		key = func(_ any, i int) string { return strconv.Itoa(i) }
	}

	var existing, kept []*Node
	insertAt := -1
	for _, c := range parent.children {
		if c.Tag == j.Element && (j.Class == "" || c.HasClass(j.Class)) {
			if insertAt < 0 {
				insertAt = len(kept)
			}
			existing = append(existing, c)
			continue
		}
		kept = append(kept, c)
	}
	if insertAt < 0 {
		insertAt = len(kept)
	}

	byKey := make(map[string]*Node, len(existing))
	for _, c := range existing {
		if _, dup := byKey[c.key]; !dup {
			byKey[c.key] = c
		}
	}

	var out Joined
	out.nodes = make([]*Node, 0, len(data))
	matched := make(map[*Node]bool, len(existing))
	for i, d := range data {
		k := key(d, i)
		if c, ok := byKey[k]; ok && !matched[c] {
			matched[c] = true
			c.Datum = d
			out.Update = append(out.Update, c)
			out.nodes = append(out.nodes, c)
			continue
		}
		c := NewNode(j.Element)
		c.key = k
		c.Datum = d
		if j.Class != "" {
			c.SetAttr("class", j.Class)
		}
		out.Enter = append(out.Enter, c)
		out.nodes = append(out.nodes, c)
	}

	for _, c := range existing {
		if !matched[c] {
			c.parent = nil
			out.Exit = append(out.Exit, c)
		}
	}
	for _, c := range out.nodes {
		c.parent = parent
	}
	parent.children = slices.Concat(kept[:insertAt], out.nodes, kept[insertAt:])
	return out
}

// Values converts a typed slice for use with Join.
func Values[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
