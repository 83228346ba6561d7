package checks

type ExecutableStatementCount struct{ Base }

func (c *ExecutableStatementCount) Init() error { return c.defaults("max", "30") }

type FileLength struct{ Base }

func (c *FileLength) Init() error { return c.defaults("max", "2000") }

// FuncLitLength limits the length of function literals.
type FuncLitLength struct{ Base }

func (c *FuncLitLength) Init() error { return c.defaults("max", "20") }

// LineLength flags lines longer than max. Lines matching ignorePattern are
// skipped.
type LineLength struct{ Base }

func (c *LineLength) Init() error {
	return c.defaults("max", "80", "ignorePattern", "^$", "tabWidth", "8")
}

type MethodCount struct{ Base }

func (c *MethodCount) Init() error { return c.defaults("maxTotal", "100", "maxExported", "100") }

type MethodLength struct{ Base }

func (c *MethodLength) Init() error { return c.defaults("max", "150", "countEmpty", "true") }

type ParameterNumber struct{ Base }

func (c *ParameterNumber) Init() error { return c.defaults("max", "7", "ignoreVariadic", "false") }
