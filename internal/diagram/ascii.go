package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// DrawASCIIDiagram renders one diagram of the beam as a terminal line chart
func DrawASCIIDiagram(r *beam.Result, kind string, width, height int) (string, error) {
	data, err := Uniform(r, kind, width)
	if err != nil {
		return "", err
	}
	lengthUnit, byKind := Units(r.System)
	bs := r.Model.Boundaries
	caption := fmt.Sprintf("%s (%s) from x = %g to %g %s",
		titles[kind], byKind[kind], bs[0].Position, bs[len(bs)-1].Position, lengthUnit)

	precision := uint(2)
	if kind == "rotation" || kind == "displacement" {
		precision = 5
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(precision),
		asciigraph.Caption(caption),
	), nil
}

// DrawBeamSketch draws the span layout with a symbol under every support
//
//	fixed ▓   pinned ▲   roller ○   hinge ◆   free end ┆
func DrawBeamSketch(r *beam.Result, width int) string {
	var sb strings.Builder
	bs := r.Model.Boundaries
	start, end := bs[0].Position, bs[len(bs)-1].Position
	if width < 10 {
		width = 10
	}

	column := func(x float64) int {
		if end == start {
			return 0
		}
		return int((x - start) / (end - start) * float64(width-1))
	}

	beamLine := []rune(strings.Repeat("═", width))
	marks := []rune(strings.Repeat(" ", width))
	for _, b := range bs {
		c := column(b.Position)
		switch b.Kind {
		case beam.Fixed:
			marks[c] = '▓'
		case beam.Pinned:
			marks[c] = '▲'
		case beam.Roller:
			marks[c] = '○'
		case beam.InternalHinge:
			beamLine[c] = '◆'
		case beam.FreeEnd:
			marks[c] = '┆'
		}
	}

	loads := []rune(strings.Repeat(" ", width))
	for _, d := range r.Model.DistributedLoads {
		for c := column(d.Start); c <= column(d.End) && c < width; c++ {
			loads[c] = '┬'
		}
	}
	for _, p := range r.Model.PointLoads {
		loads[column(p.Position)] = '↓'
	}
	for _, m := range r.Model.Moments {
		if m.Magnitude < 0 {
			loads[column(m.Position)] = '↻'
		} else {
			loads[column(m.Position)] = '↺'
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  " + string(loads) + "\n")
	sb.WriteString("  " + string(beamLine) + "\n")
	sb.WriteString("  " + string(marks) + "\n")
	sb.WriteString("\n  Legend: ▓ fixed  ▲ pinned  ○ roller  ◆ hinge  ┆ free end  ↓ point load  ┬ distributed  ↺↻ moment\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
