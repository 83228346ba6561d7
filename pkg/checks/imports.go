package checks

// AvoidBlankImport flags `import _ "pkg"` outside main packages and tests.
type AvoidBlankImport struct{ Base }

func (c *AvoidBlankImport) Init() error {
	return c.defaults("allowInMain", "true", "allowInTests", "true")
}

// AvoidDotImport flags `import . "pkg"`.
type AvoidDotImport struct{ Base }

func (c *AvoidDotImport) Init() error {
	return c.defaults("excludes", "", "allowInTests", "false")
}

type IllegalImport struct{ Base }

func (c *IllegalImport) Init() error {
	return c.defaults("illegalPkgs", "unsafe", "regexp", "false")
}

// ImportOrder enforces the grouping of import blocks.
type ImportOrder struct{ Base }

func (c *ImportOrder) Init() error {
	return c.defaults("groups", "std,third_party,local", "separated", "true", "localPrefix", "")
}

type RedundantImport struct{ Base }

func (c *RedundantImport) Init() error { return c.defaults() }

type UnusedImports struct{ Base }

func (c *UnusedImports) Init() error { return c.defaults() }
