package deck

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"slidereel/internal/logger"
	"slidereel/internal/slide"
)

// MarkdownSlide is one slide of a markdown deck, rendered with glamour
type MarkdownSlide struct {
	source   string
	title    string
	copyText string
	style    string
	maxWidth int
	cache    map[int]string
}

// NewMarkdownSlide prepares a slide from its markdown source
func NewMarkdownSlide(source string, opts Options) *MarkdownSlide {
	o := inspect(source)
	return &MarkdownSlide{
		source:   source,
		title:    o.title,
		copyText: o.copy,
		style:    opts.Style,
		maxWidth: opts.MaxWidth,
		cache:    make(map[int]string),
	}
}

// Title is the text of the slide's first heading
func (s *MarkdownSlide) Title() string {
	return s.title
}

// CopyText is the body of the slide's first fenced code block
func (s *MarkdownSlide) CopyText() string {
	return s.copyText
}

// Source returns the slide's markdown
func (s *MarkdownSlide) Source() string {
	return s.source
}

// Render draws the slide centred in the frame
func (s *MarkdownSlide) Render(f slide.Frame) string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}
	body := s.body(f.Width)
	return lipgloss.Place(f.Width, f.Height, lipgloss.Center, lipgloss.Center, body)
}

// body renders the markdown wrapped for the given frame width, once per width
func (s *MarkdownSlide) body(width int) string {
	wrap := width - 4
	if s.maxWidth > 0 && wrap > s.maxWidth {
		wrap = s.maxWidth
	}
	if wrap < 10 {
		wrap = 10
	}
	if out, ok := s.cache[wrap]; ok {
		return out
	}

	out, err := renderMarkdown(s.source, s.style, wrap)
	if err != nil {
		logger.Warn("falling back to raw markdown", "slide", s.title, "error", err)
		out = s.source
	}
	out = strings.Trim(out, "\n")
	s.cache[wrap] = out
	return out
}

func renderMarkdown(source, style string, wrap int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(source)
}
