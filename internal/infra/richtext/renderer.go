// Package richtext renders CMS rich-text fields to HTML.
package richtext

import (
	"bytes"
	"strings"

	"legalsite/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

type goldmarkRenderer struct {
	engine goldmark.Markdown
}

// NewRenderer returns a renderer for CMS bodies. Raw HTML written by editors
// passes through unchanged; markdown is converted with GFM extensions.
func NewRenderer() service.RichTextRenderer {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	return &goldmarkRenderer{engine: engine}
}

func (r *goldmarkRenderer) Render(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", errors.Wrap(err, "render rich text")
	}

	return buf.String(), nil
}
