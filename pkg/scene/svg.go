package scene

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// SVG serializes the laid-out document as a standalone SVG image. Layout
// nodes become groups, text of layout nodes is centred in their box, and
// each surface's <svg> is written as a nested viewport holding its drawn
// content verbatim. Call after Flush so boxes and content are current.
func (d *Document) SVG() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f" font-size="%s" font-family="sans-serif">`+"\n",
		num(d.width), num(d.height), d.width, d.height, num(d.fontSize*0.75))
	for _, c := range d.root.children {
		writeLayout(&buf, c, 1)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeLayout(buf *bytes.Buffer, n *Node, depth int) {
	if n.Style.Display == DisplayNone {
		return
	}
	if n.Tag == TagSVG {
		writeViewport(buf, n, depth)
		return
	}

	grouped := n.Class() != ""
	if grouped {
		indent(buf, depth)
		fmt.Fprintf(buf, `<g class="%s">`+"\n", escape(n.Class()))
		depth++
	}
	if n.Text != "" && n.box.Width > 0 && n.box.Height > 0 {
		writeLabel(buf, n, depth)
	}
	for _, c := range n.children {
		writeLayout(buf, c, depth)
	}
	if grouped {
		indent(buf, depth-1)
		buf.WriteString("</g>\n")
	}
}

func writeLabel(buf *bytes.Buffer, n *Node, depth int) {
	b := n.box
	x, anchor := b.X+b.Width/2, "middle"
	switch n.Style.TextAlign {
	case "start":
		x, anchor = b.X, "start"
	case "end":
		x, anchor = b.X+b.Width, "end"
	}
	y := b.Y + b.Height/2

	indent(buf, depth)
	fmt.Fprintf(buf, `<text x="%s" y="%s" text-anchor="%s" dominant-baseline="central"`, num(x), num(y), anchor)
	if n.Style.Rotate != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%s %s %s)"`, num(n.Style.Rotate), num(b.X+b.Width/2), num(y))
	}
	fmt.Fprintf(buf, ">%s</text>\n", escape(n.Text))
}

// writeViewport writes a surface's drawing element as a nested <svg> placed
// at the surface box. A viewBox set by a measure listener is kept as is.
func writeViewport(buf *bytes.Buffer, n *Node, depth int) {
	b := n.box
	viewBox := n.Attr("viewBox")
	if viewBox == "" {
		viewBox = fmt.Sprintf("0 0 %s %s", num(b.Width), num(b.Height))
	}
	overflow := "visible"
	if p := n.parent; p != nil && p.Style.Overflow == "hidden" {
		overflow = "hidden"
	}

	indent(buf, depth)
	fmt.Fprintf(buf, `<svg x="%s" y="%s" width="%s" height="%s" viewBox="%s" overflow="%s"`,
		num(b.X), num(b.Y), num(b.Width), num(b.Height), escape(viewBox), overflow)
	for _, k := range n.Attrs() {
		switch k {
		case "viewBox", "x", "y", "width", "height":
			continue
		}
		fmt.Fprintf(buf, ` %s="%s"`, k, escape(n.attrs[k]))
	}
	if len(n.children) == 0 {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">\n")
	for _, c := range n.children {
		writeContent(buf, c, depth+1)
	}
	indent(buf, depth)
	buf.WriteString("</svg>\n")
}

func writeContent(buf *bytes.Buffer, n *Node, depth int) {
	indent(buf, depth)
	buf.WriteString("<" + n.Tag)
	for _, k := range n.Attrs() {
		fmt.Fprintf(buf, ` %s="%s"`, k, escape(n.attrs[k]))
	}
	if n.Text == "" && len(n.children) == 0 {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">")
	if n.Text != "" {
		buf.WriteString(escape(n.Text))
	}
	if len(n.children) > 0 {
		buf.WriteString("\n")
		for _, c := range n.children {
			writeContent(buf, c, depth+1)
		}
		indent(buf, depth)
	}
	buf.WriteString("</" + n.Tag + ">\n")
}

func indent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(roundTo(v, 2), 'f', -1, 64)
}

func roundTo(v float64, places int) float64 {
	p := 1.0
	for range places {
		p *= 10
	}
	r := v * p
	if r < 0 {
		return float64(int64(r-0.5)) / p
	}
	return float64(int64(r+0.5)) / p
}
