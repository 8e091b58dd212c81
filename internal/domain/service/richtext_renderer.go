package service

// RichTextRenderer turns CMS rich-text bodies (markdown or raw HTML) into HTML
type RichTextRenderer interface {
	// Render converts source into HTML. Empty input renders to empty output.
	Render(source string) (string, error)
}
