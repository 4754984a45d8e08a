package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantFront string
		wantBody  string
	}{
		{"none", "# Hello\n", "", "# Hello\n"},
		{"block", "---\ntitle: X\n---\n# Hello\n", "title: X\n", "# Hello\n"},
		{"dots close", "---\ntitle: X\n...\nbody", "title: X\n", "body"},
		{"unclosed", "---\ntitle: X\n", "", "---\ntitle: X\n"},
		{"only block", "---\na: 1\n---", "a: 1\n", ""},
		{"not at start", "\n---\ntitle: X\n---\n", "", "\n---\ntitle: X\n---\n"},
		{"leading separator", "---\nHello world\n\n---\n\n# Two\n", "", "---\nHello world\n\n---\n\n# Two\n"},
		{"leading list", "---\n- one\n- two\n---\n# Two\n", "", "---\n- one\n- two\n---\n# Two\n"},
		{"leading heading", "---\n# One\n---\n# Two\n", "", "---\n# One\n---\n# Two\n"},
		{"malformed mapping", "---\ntitle: [x\n---\nbody", "title: [x\n", "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, body := splitFrontMatter([]byte(tt.src))
			assert.Equal(t, tt.wantFront, string(front))
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestSplitSlides(t *testing.T) {
	src := "# One\n\ntext\n\n---\n\n# Two\n\n***\n# Three\n\n___\n"
	slides, err := splitSlides([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"# One\n\ntext", "# Two", "# Three"}, slides)
}

func TestSplitSlides_SetextHeadingIsNotASeparator(t *testing.T) {
	src := "Heading\n---\nbody\n\n---\nnext"
	slides, err := splitSlides([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"Heading\n---\nbody", "next"}, slides)
}

func TestSplitSlides_IgnoresSeparatorsInCode(t *testing.T) {
	src := "# Code\n\n```yaml\n\n---\nkey: value\n```\n\n---\n\n~~~~\n\n***\n~~~\n~~~~\n"
	slides, err := splitSlides([]byte(src))
	require.NoError(t, err)
	require.Len(t, slides, 2)
	assert.Contains(t, slides[0], "key: value")
	assert.Equal(t, "~~~~\n\n***\n~~~\n~~~~", slides[1])
}

func TestSplitSlides_DropsBlankSlides(t *testing.T) {
	slides, err := splitSlides([]byte("---\n\n---\n# Only\n\n---\n   \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"# Only"}, slides)

	slides, err = splitSlides(nil)
	require.NoError(t, err)
	assert.Empty(t, slides)
}

func TestSplitSlides_CRLF(t *testing.T) {
	slides, err := splitSlides([]byte("# A\r\n\r\n---\r\n# B\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"# A", "# B"}, slides)
}

func TestIsSeparator(t *testing.T) {
	for _, line := range []string{"---", "***", "___", "-----", "  ---  "} {
		assert.True(t, isSeparator(line), line)
	}
	for _, line := range []string{"--", "-*-", "--- x", "", "==="} {
		assert.False(t, isSeparator(line), line)
	}
}
