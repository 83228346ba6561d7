package checks

type EmptyLineSeparator struct{ Base }

func (c *EmptyLineSeparator) Init() error {
	return c.defaults("allowMultipleEmptyLines", "true", "allowNoEmptyLineBetweenFields", "true")
}

// FileTabCharacter flags tabs. Most Go code is expected to disable it.
type FileTabCharacter struct{ Base }

func (c *FileTabCharacter) Init() error { return c.defaults("eachLine", "false") }

type NoWhitespaceAfter struct{ Base }

func (c *NoWhitespaceAfter) Init() error { return c.defaults("tokens", "!,^,&,*,<-") }

type NoWhitespaceBefore struct{ Base }

func (c *NoWhitespaceBefore) Init() error { return c.defaults("tokens", ",,;,++,--") }

type OperatorWrap struct{ Base }

func (c *OperatorWrap) Init() error { return c.defaults("option", "eol") }

type SingleSpaceSeparator struct{ Base }

func (c *SingleSpaceSeparator) Init() error { return c.defaults("validateComments", "false") }

type TrailingWhitespace struct{ Base }

func (c *TrailingWhitespace) Init() error { return c.defaults() }
