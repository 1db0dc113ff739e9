package main

import (
	"fmt"
	"strings"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.Format(timestampFormat)
}

// renderSection produces one section block: the heading, the optional
// description as a blockquote, one line per post, and a trailing blank
// line.
func renderSection(s Section, ps posts) string {
	lines := make([]string, 0, len(ps)+3)
	lines = append(lines, "## "+s.Title)
	if len(s.Description) > 0 {
		lines = append(lines, "> "+s.Description+"\n")
	}
	for _, p := range ps {
		lines = append(lines, p.line())
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderPostList(ps posts) string {
	lines := make([]string, len(ps))
	for i, p := range ps {
		lines[i] = p.line()
	}
	return strings.Join(lines, "\n")
}

// expandTemplate substitutes {name} placeholders in the template text.
// "{{" and "}}" escape to literal braces. The template is externally
// authored and not validated beforehand, so an unknown placeholder or
// malformed brace syntax is an error, not a silent mismatch.
func expandTemplate(tmpl string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("template: unclosed placeholder at offset %v", i)
			}
			name := tmpl[i+1 : i+1+end]
			val, ok := vars[name]
			if !ok {
				return "", fmt.Errorf("template: unknown placeholder %q", name)
			}
			b.WriteString(val)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("template: unexpected '}' at offset %v", i)
		default:
			b.WriteByte(tmpl[i])
		}
	}

	return b.String(), nil
}
