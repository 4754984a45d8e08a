package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"slidereel/internal/navigation"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// SlideArea is the already rendered content of the slide region
	SlideArea string

	CanAdvance bool
	CanRetreat bool
	Progress   []navigation.Marker

	DeckTitle     string
	StatusMessage string
	StatusIsError bool

	ShowHelp   bool
	HelpModel  help.Model
	KeyMap     help.KeyMap
	ShowArrows bool
	ShowDots   bool
	ShowCount  bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	layout := NewLayout(state.Width, state.Height, state.ShowArrows)

	var content strings.Builder
	content.WriteString(r.renderSlideArea(state, layout))
	if layout.Footer.H > 0 {
		if layout.Slide.H > 0 {
			content.WriteString("\n")
		}
		content.WriteString(r.renderFooter(state, layout.Footer.W))
	}
	finalContent := content.String()

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(state), state.Height, state.Width, r.styles.HelpBox)
	}
	return finalContent
}

// renderSlideArea draws the slide region with the arrows in their gutters
func (r *Renderer) renderSlideArea(state ViewState, layout Layout) string {
	if layout.Slide.H == 0 {
		return ""
	}

	area := state.SlideArea
	if len(state.Progress) == 0 {
		area = lipgloss.Place(layout.Slide.W, layout.Slide.H, lipgloss.Center, lipgloss.Center, r.styles.Empty.Render("No slides"))
	}
	slideLines := strings.Split(area, "\n")

	g := layout.Slide.X
	blank := strings.Repeat(" ", g)
	rows := make([]string, layout.Slide.H)
	for y := range rows {
		line := ""
		if y < len(slideLines) {
			line = fit(slideLines[y], layout.Slide.W)
		} else {
			line = strings.Repeat(" ", layout.Slide.W)
		}

		left, right := blank, blank
		if y == layout.ArrowRow() && g > 0 {
			if state.CanRetreat {
				left = r.arrowCell(backArrow, g)
			}
			if state.CanAdvance {
				right = r.arrowCell(forwardArrow, g)
			}
		}
		rows[y] = left + line + right
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) arrowCell(glyph string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, r.styles.Arrow.Render(glyph))
}

// renderFooter draws the deck title or status on the left, the dots in the middle and the counter on the right
func (r *Renderer) renderFooter(state ViewState, width int) string {
	left := r.styles.Title.Render(state.DeckTitle)
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		left = style.Render(state.StatusMessage)
	}

	right := ""
	if state.ShowCount && len(state.Progress) > 0 {
		right = r.styles.Counter.Render(fmt.Sprintf("%d/%d", activeIndex(state.Progress)+1, len(state.Progress)))
	}

	leftW := 0
	if left != "" {
		leftW = min(ansi.StringWidth(left), width/3)
	}
	rightW := ansi.StringWidth(right)
	if rightW >= width {
		right, rightW = "", 0
	}

	// the dots keep one cell of space from each neighbour
	gap := width - leftW - rightW
	middle := ""
	if state.ShowDots {
		middle = r.renderProgress(state.Progress, gap-2)
	}
	line := fit(left, leftW) + lipgloss.PlaceHorizontal(gap, lipgloss.Center, middle) + right
	return fit(line, width)
}

// renderProgress draws one dot per slide. When even one cell per slide does not
// fit in width, it draws a width-sized window of dots around the active slide.
func (r *Renderer) renderProgress(markers []navigation.Marker, width int) string {
	if len(markers) == 0 || width <= 0 {
		return ""
	}
	total, active := len(markers), activeIndex(markers)
	if total > width {
		start := min(max(active-width/2, 0), total-width)
		total, active = width, active-start
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.SetTotalPages(total)
	p.Page = active
	p.ActiveDot = r.styles.DotActive.Render("●")
	p.InactiveDot = r.styles.DotInactive.Render("○")
	return p.View()
}

func activeIndex(markers []navigation.Marker) int {
	for _, m := range markers {
		if m.Active {
			return m.Index
		}
	}
	return 0
}

// renderHelpContent renders the help information
func (r *Renderer) renderHelpContent(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.HelpTitle.Render("slidereel"))
	b.WriteString("\n")
	if state.KeyMap != nil {
		h := state.HelpModel
		h.ShowAll = true
		h.Styles.FullKey = r.styles.HelpKey
		h.Styles.FullDesc = r.styles.HelpDesc
		b.WriteString(h.View(state.KeyMap))
		b.WriteString("\n\n")
	}
	b.WriteString(r.styles.HelpDesc.Render("Drag left or right to change slides,"))
	b.WriteString("\n")
	b.WriteString(r.styles.HelpDesc.Render("or click the ‹ › arrows."))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("Press ? or esc to close"))
	return b.String()
}

// fit cuts or pads a line to exactly width cells
func fit(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
