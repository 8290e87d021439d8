// Package markdown renders card markup to the HTML fragment stored next to it.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// Renderer converts Markdown source to HTML.
type Renderer func(src string) string

var md = goldmark.New()

// Render converts src to HTML using CommonMark rules. It is deterministic
// and has no side effects.
func Render(src string) string {
	var buf bytes.Buffer
	// goldmark only fails when the writer fails; bytes.Buffer never does.
	if err := md.Convert([]byte(src), &buf); err != nil {
		return ""
	}
	return buf.String()
}
