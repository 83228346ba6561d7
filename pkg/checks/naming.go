package checks

// Naming checks share one shape: identifiers of a kind must match format.

type AbbreviationAsWordInName struct{ Base }

func (c *AbbreviationAsWordInName) Init() error {
	return c.defaults("allowedAbbreviationLength", "3", "allowedAbbreviations", "ID,URL,HTTP,JSON")
}

type ConstantName struct{ Base }

func (c *ConstantName) Init() error { return c.defaults("format", "^[A-Za-z][a-zA-Z0-9]*$") }

type LocalVariableName struct{ Base }

func (c *LocalVariableName) Init() error {
	return c.defaults("format", "^[a-z_][a-zA-Z0-9]*$", "allowOneCharVarInForLoop", "true")
}

type MemberName struct{ Base }

func (c *MemberName) Init() error { return c.defaults("format", "^[A-Za-z][a-zA-Z0-9]*$") }

type MethodName struct{ Base }

func (c *MethodName) Init() error { return c.defaults("format", "^[A-Za-z][a-zA-Z0-9]*$") }

type PackageName struct{ Base }

func (c *PackageName) Init() error { return c.defaults("format", "^[a-z][a-z0-9]*$") }

type ParameterName struct{ Base }

func (c *ParameterName) Init() error { return c.defaults("format", "^[a-z_][a-zA-Z0-9]*$") }

// ReceiverName keeps method receivers short and consistent.
type ReceiverName struct{ Base }

func (c *ReceiverName) Init() error {
	return c.defaults("format", "^[a-z]{1,3}$", "forbidden", "this,self,me")
}

type TypeName struct{ Base }

func (c *TypeName) Init() error { return c.defaults("format", "^[A-Za-z][a-zA-Z0-9]*$") }
