package topics

import "strings"

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and its file extension and returns the text
	// to print.
	Render(content string, ext string) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(content, ext string) string

func (f RendererFunc) Render(content, ext string) string {
	return f(content, ext)
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// MarkdownOnly applies render to ".md" topics and leaves the rest alone.
func MarkdownOnly(render func(string) string) Renderer {
	return RendererFunc(func(content, ext string) string {
		if !strings.EqualFold(ext, ".md") {
			return content
		}
		return render(content)
	})
}
