// Package core turns a loaded configuration into a ready set of modules.
//
// Setup resolves every configured module name through a resolver.Factory,
// applies the configured properties, and sorts the results by role: file
// filters decide which input files are looked at, event filters (the
// suppression filters among them) decide which audit events survive.
// Commands in internal/cli only format what Setup returns.
package core
