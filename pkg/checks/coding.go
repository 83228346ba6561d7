package checks

type DefaultComesLast struct{ Base }

func (c *DefaultComesLast) Init() error { return c.defaults("skipIfLastAndSharedWithCase", "false") }

type EmptyStatement struct{ Base }

func (c *EmptyStatement) Init() error { return c.defaults() }

// FallThrough flags fallthrough statements not preceded by a comment
// matching reliefPattern.
type FallThrough struct{ Base }

func (c *FallThrough) Init() error {
	return c.defaults("checkLastCaseGroup", "false", "reliefPattern", "falls?[ -]?thr(u|ough)")
}

// HiddenField flags locals and parameters shadowing a package-level name.
type HiddenField struct{ Base }

func (c *HiddenField) Init() error {
	return c.defaults("ignoreFormat", "", "ignoreReceiver", "true")
}

type IllegalToken struct{ Base }

func (c *IllegalToken) Init() error { return c.defaults("tokens", "goto") }

type IllegalTokenText struct{ Base }

func (c *IllegalTokenText) Init() error {
	return c.defaults("tokens", "", "format", "^$", "ignoreCase", "false", "message", "")
}

type InnerAssignment struct{ Base }

func (c *InnerAssignment) Init() error { return c.defaults() }

// MagicNumber flags numeric literals outside constant declarations.
type MagicNumber struct{ Base }

func (c *MagicNumber) Init() error {
	return c.defaults("ignoreNumbers", "-1,0,1,2", "ignoreTests", "false")
}

type MissingSwitchDefault struct{ Base }

func (c *MissingSwitchDefault) Init() error { return c.defaults() }

type MultipleStringLiterals struct{ Base }

func (c *MultipleStringLiterals) Init() error {
	return c.defaults("allowedDuplicates", "1", "ignoreStringsRegexp", `^""$`)
}

// NakedReturn flags bare returns in functions longer than maxLength lines.
type NakedReturn struct{ Base }

func (c *NakedReturn) Init() error { return c.defaults("maxLength", "5") }

type NestedForDepth struct{ Base }

func (c *NestedForDepth) Init() error { return c.defaults("max", "1") }

type NestedIfDepth struct{ Base }

func (c *NestedIfDepth) Init() error { return c.defaults("max", "1") }

type OneStatementPerLine struct{ Base }

func (c *OneStatementPerLine) Init() error { return c.defaults() }

type ParameterAssignment struct{ Base }

func (c *ParameterAssignment) Init() error { return c.defaults() }

type ReturnCount struct{ Base }

func (c *ReturnCount) Init() error { return c.defaults("max", "2", "maxForVoid", "1") }

type SimplifyBooleanExpression struct{ Base }

func (c *SimplifyBooleanExpression) Init() error { return c.defaults() }

type SimplifyBooleanReturn struct{ Base }

func (c *SimplifyBooleanReturn) Init() error { return c.defaults() }

type UnnecessaryParentheses struct{ Base }

func (c *UnnecessaryParentheses) Init() error { return c.defaults() }
