package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"slidereel/internal/domain"
	"slidereel/internal/slide"
)

// PagerOps shows text in the ov pager while Bubble Tea has released the terminal
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// Show displays content using ov pager
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// Outline lists the deck's slide titles, numbered from 1, marking the current slide
func Outline(info domain.DeckInfo, slides slide.Sequence, current int) string {
	var b strings.Builder
	title := info.Title
	if title == "" {
		title = "Untitled deck"
	}
	b.WriteString(title)
	if info.Author != "" {
		fmt.Fprintf(&b, " by %s", info.Author)
	}
	b.WriteString("\n\n")

	width := len(fmt.Sprint(len(slides)))
	for i, s := range slides {
		marker := " "
		if i == current {
			marker = ">"
		}
		t := s.Title()
		if t == "" {
			t = fmt.Sprintf("Slide %d", i+1)
		}
		fmt.Fprintf(&b, "%s %*d. %s\n", marker, width, i+1, t)
	}
	if len(slides) == 0 {
		b.WriteString("  (no slides)\n")
	}
	return b.String()
}
