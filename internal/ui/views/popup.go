package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws the styled popup centred over a dimmed copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	popup := popupStyle.Render(popupContent)
	popupLines := strings.Split(popup, "\n")
	if len(popupLines) > height {
		popupLines = popupLines[:height]
	}
	popupW := 0
	for _, l := range popupLines {
		popupW = max(popupW, ansi.StringWidth(l))
	}
	if popupW > width {
		popupW = width
	}

	base := strings.Split(mainContent, "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	x := (width - popupW) / 2
	y := (height - len(popupLines)) / 2
	out := make([]string, height)
	for row := range base {
		line := pr.desaturate(base[row], width)
		if row >= y && row < y+len(popupLines) {
			p := ansi.Truncate(popupLines[row-y], popupW, "")
			if pad := popupW - ansi.StringWidth(p); pad > 0 {
				p += strings.Repeat(" ", pad)
			}
			line = ansi.Cut(line, 0, x) + p + ansi.Cut(line, x+popupW, width)
		}
		out[row] = line
	}
	return strings.Join(out, "\n")
}

// desaturate strips styles from a line, pads it to width and draws it in the backdrop colour
func (pr *PopupRenderer) desaturate(line string, width int) string {
	plain := ansi.Strip(line)
	if pad := width - ansi.StringWidth(plain); pad > 0 {
		plain += strings.Repeat(" ", pad)
	}
	return pr.styles.Backdrop.Render(plain)
}
