package checks

type BooleanExpressionComplexity struct{ Base }

func (c *BooleanExpressionComplexity) Init() error { return c.defaults("max", "3") }

// CyclomaticComplexity counts decision points per function.
type CyclomaticComplexity struct{ Base }

func (c *CyclomaticComplexity) Init() error {
	return c.defaults("max", "10", "switchBlockAsSingleDecisionPoint", "false")
}

type FanOutComplexity struct{ Base }

func (c *FanOutComplexity) Init() error { return c.defaults("max", "20", "excludedPackages", "fmt,errors") }

// NCSS counts non-commenting source statements.
type NCSS struct{ Base }

func (c *NCSS) Init() error {
	return c.defaults("methodMaximum", "50", "fileMaximum", "2000")
}

type NPathComplexity struct{ Base }

func (c *NPathComplexity) Init() error { return c.defaults("max", "200") }
