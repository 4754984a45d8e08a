package deck

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*\s*:`)

// splitFrontMatter separates a leading YAML block delimited by "---" lines.
// A document without a closed block has no front matter, and neither has one
// whose leading block is slide text rather than a YAML mapping.
func splitFrontMatter(src []byte) (front []byte, body []byte) {
	front, body = leadingBlock(src)
	if front == nil || isFrontMatter(front) {
		return front, body
	}
	return nil, src
}

// isFrontMatter reports whether block is blank or a YAML mapping.
// Malformed YAML still counts when it opens with a key so the error surfaces.
func isFrontMatter(block []byte) bool {
	if len(bytes.TrimSpace(block)) == 0 {
		return true
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(block, &doc); err != nil {
		first := strings.TrimSpace(strings.SplitN(strings.TrimLeft(string(block), " \t\r\n"), "\n", 2)[0])
		return frontKey.MatchString(first)
	}
	return len(doc.Content) > 0 && doc.Content[0].Kind == yaml.MappingNode
}

func leadingBlock(src []byte) (front []byte, body []byte) {
	if !bytes.HasPrefix(src, []byte("---")) {
		return nil, src
	}
	first := bytes.IndexByte(src, '\n')
	if first < 0 || strings.TrimSpace(string(src[:first])) != "---" {
		return nil, src
	}

	rest := src[first+1:]
	offset := 0
	for offset <= len(rest) {
		end := bytes.IndexByte(rest[offset:], '\n')
		line := rest[offset:]
		next := len(rest) + 1
		if end >= 0 {
			line = rest[offset : offset+end]
			next = offset + end + 1
		}
		switch strings.TrimRight(string(line), " \t\r") {
		case "---", "...":
			if next > len(rest) {
				return rest[:offset], nil
			}
			return rest[:offset], rest[next:]
		}
		if end < 0 {
			break
		}
		offset = next
	}
	return nil, src
}

type fence struct {
	char byte
	size int
}

// openFence reports whether line opens a fenced code block
func openFence(line string) (fence, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return fence{}, false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return fence{}, false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return fence{}, false
	}
	if c == '`' && strings.ContainsRune(trimmed[n:], '`') {
		return fence{}, false
	}
	return fence{char: c, size: n}, true
}

// closes reports whether line closes the fence f
func (f fence) closes(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < f.size {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != f.char {
			return false
		}
	}
	return true
}

// isSeparator matches a thematic break made of one repeated character
func isSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	return strings.Count(trimmed, string(c)) == len(trimmed)
}

// splitSlides cuts a markdown body into slide sources. A separator only counts
// after a blank line (or at the start of a slide) and never inside fenced code,
// so setext headings and code samples survive. Blank slides are dropped.
func splitSlides(body []byte) ([]string, error) {
	var (
		slides  []string
		current []string
		open    *fence
	)
	flush := func() {
		text := strings.TrimSpace(strings.Join(current, "\n"))
		if text != "" {
			slides = append(slides, text)
		}
		current = current[:0]
	}
	blankBefore := func() bool {
		if len(current) == 0 {
			return true
		}
		return strings.TrimSpace(current[len(current)-1]) == ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case open != nil:
			if open.closes(line) {
				open = nil
			}
		case isSeparator(line) && blankBefore():
			flush()
			continue
		default:
			if f, ok := openFence(line); ok {
				open = &f
			}
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return slides, nil
}
