package checks

// Regexp flags, or requires, matches of format across a whole file.
type Regexp struct{ Base }

func (c *Regexp) Init() error {
	return c.defaults("format", "$^", "message", "", "illegalPattern", "false", "duplicateLimit", "-1")
}

type RegexpMultiline struct{ Base }

func (c *RegexpMultiline) Init() error {
	return c.defaults("format", "$^", "message", "", "minimum", "0", "maximum", "0")
}

type RegexpOnFilename struct{ Base }

func (c *RegexpOnFilename) Init() error {
	return c.defaults("folderPattern", "", "fileNamePattern", "", "match", "true", "ignoreFileNameExtensions", "false")
}

type RegexpSingleline struct{ Base }

func (c *RegexpSingleline) Init() error {
	return c.defaults("format", "$^", "message", "", "minimum", "0", "maximum", "0")
}
