package checks

// NewlineAtEndOfFile requires files to end with a line separator.
type NewlineAtEndOfFile struct{ Base }

func (c *NewlineAtEndOfFile) Init() error {
	return c.defaults("lineSeparator", "lf_cr_crlf", "fileExtensions", "")
}

// TodoComment flags comments matching format.
type TodoComment struct{ Base }

func (c *TodoComment) Init() error {
	return c.defaults("format", "TODO:")
}

// TrailingComment flags comments sharing a line with code.
type TrailingComment struct{ Base }

func (c *TrailingComment) Init() error {
	return c.defaults("format", `^[\s});]*$`, "legalComment", "")
}

// fileContentsHolder keeps the current file's text available to the comment
// filters. It has no exported constructor; it is only ever built by name.
type fileContentsHolder struct {
	Base
	lines []string
}

func (h *fileContentsHolder) Init() error {
	return h.defaults()
}

// SetLines replaces the held file contents.
func (h *fileContentsHolder) SetLines(lines []string) {
	h.lines = lines
}

func (h *fileContentsHolder) Lines() []string {
	return h.lines
}
