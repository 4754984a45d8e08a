package transition

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidereel/internal/domain"
)

func TestFor_Contract(t *testing.T) {
	tests := []struct {
		dir   domain.Direction
		phase domain.Phase
		want  Motion
	}{
		{domain.DirectionForward, domain.PhaseEntering, Motion{From: Visual{1, 0}, To: Visual{0, 1}}},
		{domain.DirectionBackward, domain.PhaseEntering, Motion{From: Visual{-1, 0}, To: Visual{0, 1}}},
		{domain.DirectionForward, domain.PhaseExiting, Motion{From: Visual{0, 1}, To: Visual{-1, 0}}},
		{domain.DirectionBackward, domain.PhaseExiting, Motion{From: Visual{0, 1}, To: Visual{1, 0}}},
		{domain.DirectionNone, domain.PhaseEntering, Motion{From: Visual{0, 1}, To: Visual{0, 1}}},
		{domain.DirectionNone, domain.PhaseExiting, Motion{From: Visual{0, 1}, To: Visual{0, 1}}},
		{domain.DirectionForward, domain.PhaseSettled, Motion{From: Visual{0, 1}, To: Visual{0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String()+"/"+tt.phase.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.dir, tt.phase))
			assert.Equal(t, For(tt.dir, tt.phase), For(tt.dir, tt.phase), "same inputs, same output")
		})
	}
}

func TestFor_ReelEffect(t *testing.T) {
	// A forward move pushes the old slide towards the previous edge while the new one
	// arrives from the next edge; a backward move mirrors it.
	for _, dir := range []domain.Direction{domain.DirectionForward, domain.DirectionBackward} {
		enter := For(dir, domain.PhaseEntering)
		exit := For(dir, domain.PhaseExiting)
		assert.Equal(t, -enter.From.Offset, exit.To.Offset)
		assert.Equal(t, dir.Sign(), enter.From.Offset)
	}
}

func TestMotion_At(t *testing.T) {
	m := For(domain.DirectionForward, domain.PhaseEntering)
	assert.Equal(t, Visual{1, 0}, m.At(0, 0))
	assert.Equal(t, Visual{0, 1}, m.At(1, 1))
	assert.Equal(t, Visual{0.5, 1}, m.At(0.5, 3))
	assert.InDelta(t, 0.25, m.At(0, 0.25).Opacity, 1e-9)
}

func TestPlayer_Settles(t *testing.T) {
	p := NewPlayer(domain.DirectionForward, DefaultOptions())
	require.False(t, p.Done())
	assert.Equal(t, time.Second/60, p.FrameInterval())

	start := p.Visual(domain.PhaseEntering)
	assert.Equal(t, 1.0, start.Offset)
	assert.Equal(t, 0.0, start.Opacity)

	frames := 0
	for p.Step() {
		frames++
		require.Less(t, frames, 200, "spring never settled")
	}
	assert.True(t, p.Done())
	assert.GreaterOrEqual(t, frames, 17, "fade lasts at least 300ms")
	assert.Equal(t, Visual{0, 1}, p.Visual(domain.PhaseEntering))
	assert.Equal(t, Visual{-1, 0}, p.Visual(domain.PhaseExiting))
	assert.False(t, p.Step())
}

func TestPlayer_MovesTowardsTarget(t *testing.T) {
	p := NewPlayer(domain.DirectionBackward, DefaultOptions())
	prev := p.Visual(domain.PhaseEntering)
	for i := 0; i < 5; i++ {
		p.Step()
		cur := p.Visual(domain.PhaseEntering)
		assert.Greater(t, cur.Offset, prev.Offset, "entering from the left moves right")
		assert.Greater(t, cur.Opacity, prev.Opacity)
		prev = cur
	}
}

func TestPlayer_NoDirectionIsDone(t *testing.T) {
	p := NewPlayer(domain.DirectionNone, DefaultOptions())
	assert.True(t, p.Done())
	assert.Equal(t, Visual{0, 1}, p.Visual(domain.PhaseEntering))
}

func TestComposite_SettledShowsIncoming(t *testing.T) {
	out := Composite(
		Layer{Frame: "old", Visual: Visual{-1, 0}},
		Layer{Frame: "new\nslide", Visual: Visual{0, 1}},
		8, 3, Tint{Foreground: "#FFFFFF", Background: "#121212"},
	)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "new     ", lines[0])
	assert.Equal(t, "slide   ", lines[1])
	assert.Equal(t, "        ", lines[2])
}

func TestComposite_HalfwayForward(t *testing.T) {
	out := Composite(
		Layer{Frame: "AAAAAAAA", Visual: Visual{-0.5, 1}},
		Layer{Frame: "BBBBBBBB", Visual: Visual{0.5, 1}},
		8, 1, Tint{},
	)
	assert.Equal(t, "AAAABBBB", out)
}

func TestComposite_FadedLayerIsTinted(t *testing.T) {
	out := Composite(
		Layer{},
		Layer{Frame: "\x1b[1mhello\x1b[0m", Visual: Visual{0, 0.5}},
		5, 1, Tint{Foreground: "#FFFFFF", Background: "#000000"},
	)
	assert.Equal(t, "hello", ansi.Strip(out))
	assert.Equal(t, 5, ansi.StringWidth(out))
}

func TestComposite_ZeroSize(t *testing.T) {
	assert.Equal(t, "", Composite(Layer{Frame: "x"}, Layer{Frame: "y"}, 0, 3, Tint{}))
}
