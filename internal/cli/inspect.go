package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cartesian/pkg/pipeline"
	"github.com/matzehuels/cartesian/pkg/scene"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorFaint)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
)

// inspectCommand creates the inspect command, which lays a spec out and
// shows the computed region boxes.
func (c *CLI) inspectCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "inspect [spec]",
		Short: "Show the laid-out regions of a chart",
		Long: `Lay a chart spec out and show every region of the frame: its class,
element, computed box, viewBox and the number of marks drawn into it.

Runs an interactive browser on a terminal. Use --list for a plain table.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSpecFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := c.inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if list {
				fmt.Fprintln(stdout, regionTable(regions, -1))
				return nil
			}
			_, err = tea.NewProgram(NewRegionListModel(regions)).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print a static table instead of the interactive browser")

	return cmd
}

func (c *CLI) inspect(ctx context.Context, input string) ([]Region, error) {
	spec, err := pipeline.LoadSpec(input)
	if err != nil {
		return nil, err
	}
	spec.SetDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	doc, err := pipeline.Document(ctx, &spec, c.Logger)
	if err != nil {
		return nil, err
	}
	return collectRegions(doc.Root()), nil
}

// =============================================================================
// Regions
// =============================================================================

// Region describes one laid-out node of a rendered frame.
type Region struct {
	Class   string
	Tag     string
	Box     scene.Box
	ViewBox string
	Marks   int // leaf elements drawn into the surface
}

// collectRegions returns the classed layout nodes below root in document
// order. Drawn content inside a surface is counted, not listed.
func collectRegions(root *scene.Node) []Region {
	var regions []Region
	root.Walk(func(n *scene.Node) bool {
		if n.Tag == scene.TagSVG {
			return false
		}
		if n.Class() == "" {
			return true
		}
		r := Region{Class: n.Class(), Tag: n.Tag, Box: n.Box()}
		if svg := n.Select(scene.TagSVG); svg != nil && n.Tag == scene.TagSVGSurface {
			r.ViewBox = svg.Attr("viewBox")
			r.Marks = countMarks(svg)
		}
		regions = append(regions, r)
		return true
	})
	return regions
}

// countMarks returns the number of leaf elements drawn below svg.
func countMarks(svg *scene.Node) int {
	n := 0
	svg.Walk(func(c *scene.Node) bool {
		if c != svg && len(c.Children()) == 0 {
			n++
		}
		return true
	})
	return n
}

// regionTable renders regions as a table, highlighting row cursor.
func regionTable(regions []Region, cursor int) string {
	rows := make([][]string, len(regions))
	for i, r := range regions {
		viewBox, marks := r.ViewBox, fmt.Sprint(r.Marks)
		if r.Tag != scene.TagSVGSurface {
			viewBox, marks = "-", "-"
		}
		rows[i] = []string{
			r.Class,
			r.Tag,
			fmt.Sprintf("%g,%g", r.Box.X, r.Box.Y),
			fmt.Sprintf("%gx%g", r.Box.Width, r.Box.Height),
			viewBox,
			marks,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("Region", "Element", "Origin", "Size", "ViewBox", "Marks").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return listHeaderStyle
			case row == cursor:
				return StyleTitle
			case col >= 2:
				return StyleNumber
			}
			return StyleValue
		})
	return t.Render()
}

// =============================================================================
// RegionListModel - Interactive region browser
// =============================================================================

// RegionListModel is the bubbletea model for browsing the regions of a
// rendered frame.
type RegionListModel struct {
	Regions []Region
	Cursor  int
	Height  int
	Offset  int
}

// NewRegionListModel creates a new region list model.
func NewRegionListModel(regions []Region) RegionListModel {
	return RegionListModel{
		Regions: regions,
		Height:  15,
	}
}

func (m RegionListModel) Init() tea.Cmd {
	return nil
}

func (m RegionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Regions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RegionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Chart Regions"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Regions))
	b.WriteString(regionTable(m.Regions[m.Offset:end], m.Cursor-m.Offset))
	b.WriteString("\n\n")
	if len(m.Regions) > 0 {
		r := m.Regions[m.Cursor]
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.Cursor+1, len(m.Regions), r.Class)))
	}

	return b.String()
}
