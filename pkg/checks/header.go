package checks

// Header requires files to start with a fixed text, given inline or read
// from headerFile.
type Header struct{ Base }

func (c *Header) Init() error {
	return c.defaults("header", "", "headerFile", "", "ignoreLines", "")
}

// RegexpHeader is Header with one pattern per line.
type RegexpHeader struct{ Base }

func (c *RegexpHeader) Init() error {
	return c.defaults("header", "", "headerFile", "", "multiLines", "")
}
