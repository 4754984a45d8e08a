// Package deck turns markdown files into slide sequences.
//
// A deck is a markdown document with optional YAML front matter. Slides are
// separated by a thematic break (---, *** or ___) that follows a blank line.
package deck

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"slidereel/internal/domain"
	"slidereel/internal/slide"
)

// DemoSource names the built-in deck in DeckInfo.Source
const DemoSource = "demo"

//go:embed demo.md
var demoDeck []byte

// Options controls how slides are rendered
type Options struct {
	// Style is a glamour style name or a path to a glamour JSON style
	Style string
	// MaxWidth caps the wrap width of slide text; zero means the frame width
	MaxWidth int
}

// DefaultOptions renders with glamour's dark style, wrapped at 100 columns
func DefaultOptions() Options {
	return Options{Style: "dark", MaxWidth: 100}
}

// FrontMatter is the optional YAML header of a deck
type FrontMatter struct {
	Title        string `yaml:"title"`
	Author       string `yaml:"author"`
	InitialSlide *int   `yaml:"initial_slide"`
	Style        string `yaml:"style"`
}

// Deck is a parsed presentation
type Deck struct {
	Info   domain.DeckInfo
	Meta   FrontMatter
	Slides slide.Sequence
}

// Initial returns the slide the deck asks to open on, 1-based in the file and 0-based here
func (d *Deck) Initial() (int, bool) {
	if d.Meta.InitialSlide == nil {
		return 0, false
	}
	return *d.Meta.InitialSlide - 1, true
}

// Parse reads a deck from markdown source. source names it in DeckInfo.
func Parse(src []byte, source string, opts Options) (*Deck, error) {
	front, body := splitFrontMatter(src)

	var meta FrontMatter
	if len(front) > 0 {
		if err := yaml.Unmarshal(front, &meta); err != nil {
			return nil, fmt.Errorf("failed to parse front matter: %w", err)
		}
	}
	if meta.Style != "" {
		opts.Style = meta.Style
	}

	parts, err := splitSlides(body)
	if err != nil {
		return nil, fmt.Errorf("failed to split slides: %w", err)
	}

	slides := make(slide.Sequence, 0, len(parts))
	for _, part := range parts {
		slides = append(slides, NewMarkdownSlide(part, opts))
	}

	title := meta.Title
	if title == "" && len(slides) > 0 {
		title = slides[0].Title()
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}

	return &Deck{
		Info: domain.DeckInfo{
			Title:      title,
			Author:     meta.Author,
			Source:     source,
			SlideCount: len(slides),
		},
		Meta:   meta,
		Slides: slides,
	}, nil
}

// Load reads and parses the deck at path
func Load(path string, opts Options) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return Parse(data, path, opts)
}

// Demo returns the built-in deck
func Demo(opts Options) *Deck {
	d, err := Parse(demoDeck, DemoSource, opts)
	if err != nil {
		panic(fmt.Sprintf("embedded demo deck is invalid: %v", err))
	}
	return d
}

// Open loads the deck at path, or the built-in deck when path is empty
func Open(path string, opts Options) (*Deck, error) {
	if path == "" {
		return Demo(opts), nil
	}
	return Load(path, opts)
}
