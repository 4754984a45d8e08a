package transition

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Layer is a rendered frame at a visual state
type Layer struct {
	Frame  string
	Visual Visual
}

// Tint is the pair of colours faded between while a layer is partly transparent
type Tint struct {
	Foreground string
	Background string
}

// Composite draws the outgoing and incoming frames into one width x height frame.
// The incoming layer is drawn on top where the two overlap. Layers that are not
// fully opaque lose their styling and are drawn in a colour between the tint's
// background and foreground.
func Composite(out, in Layer, width, height int, tint Tint) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	outLines := prepare(out, height, tint)
	inLines := prepare(in, height, tint)
	outShift := shift(out.Visual.Offset, width)
	inShift := shift(in.Visual.Offset, width)

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		rows[y] = composeRow(
			segment{line: outLines[y], shift: outShift},
			segment{line: inLines[y], shift: inShift},
			width,
		)
	}
	return strings.Join(rows, "\n")
}

type segment struct {
	line  string
	shift int
}

// span returns the columns [left, right) the segment covers on screen
func (s segment) span(width int) (int, int) {
	left := s.shift
	right := s.shift + width
	if left < 0 {
		left = 0
	}
	if right > width {
		right = width
	}
	return left, right
}

// cut returns the segment's content for screen columns [from, to)
func (s segment) cut(from, to int) string {
	if to <= from {
		return ""
	}
	part := ansi.Cut(s.line, from-s.shift, to-s.shift)
	if pad := (to - from) - ansi.StringWidth(part); pad > 0 {
		part += strings.Repeat(" ", pad)
	}
	return part
}

// composeRow lays out the bottom segment a and the top segment b on one row
func composeRow(a, b segment, width int) string {
	al, ar := a.span(width)
	bl, br := b.span(width)

	var sb strings.Builder
	col := 0
	emit := func(s segment, from, to int) {
		if from > col {
			sb.WriteString(strings.Repeat(" ", from-col))
			col = from
		}
		if to > from {
			sb.WriteString(s.cut(from, to))
			col = to
		}
	}

	if bl >= br {
		emit(a, al, ar)
	} else {
		emit(a, al, min(ar, bl))
		emit(b, bl, br)
		emit(a, max(al, br), ar)
	}
	if col < width {
		sb.WriteString(strings.Repeat(" ", width-col))
	}
	return sb.String()
}

func shift(offset float64, width int) int {
	return int(math.Round(offset * float64(width)))
}

// prepare splits a frame into exactly height lines, tinted by opacity
func prepare(l Layer, height int, tint Tint) []string {
	lines := strings.Split(l.Frame, "\n")
	if l.Frame == "" {
		lines = nil
	}
	out := make([]string, height)
	opacity := clamp01(l.Visual.Opacity)
	var style *lipgloss.Style
	if opacity < 0.999 {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(blend(tint, opacity)))
		style = &s
	}
	for i := 0; i < height && i < len(lines); i++ {
		if style != nil && opacity > 0.001 {
			out[i] = style.Render(ansi.Strip(lines[i]))
		} else if style == nil {
			out[i] = lines[i]
		}
	}
	return out
}

// blend returns the hex colour opacity of the way from background to foreground
func blend(t Tint, opacity float64) string {
	fg, err := colorful.Hex(t.Foreground)
	if err != nil {
		fg = colorful.Color{R: 1, G: 1, B: 1}
	}
	bg, err := colorful.Hex(t.Background)
	if err != nil {
		bg = colorful.Color{}
	}
	return bg.BlendLab(fg, clamp01(opacity)).Clamped().Hex()
}
