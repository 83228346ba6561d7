package checks

type AvoidNestedBlocks struct{ Base }

func (c *AvoidNestedBlocks) Init() error {
	return c.defaults("allowInSwitchCase", "false")
}

type EmptyBlock struct{ Base }

func (c *EmptyBlock) Init() error {
	return c.defaults("option", "statement", "tokens", "for,if,else,switch,select,func")
}

type LeftCurly struct{ Base }

func (c *LeftCurly) Init() error {
	return c.defaults("option", "eol")
}

type RightCurly struct{ Base }

func (c *RightCurly) Init() error {
	return c.defaults("option", "same")
}
