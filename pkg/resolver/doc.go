// Package resolver turns the module names users write in configuration into
// constructed module values.
//
// A name is tried against four strategies, in order, and the first
// successful construction wins:
//
//  1. direct: the alias table entry for the name, or the name itself when it
//     is already fully qualified
//  2. suffixed: the same, with the check suffix appended
//  3. prefixed: every namespace prefix joined with the name, in prefix order
//  4. suffixed-prefixed: every namespace prefix joined with the suffixed name
//
// A bare name that is not an alias is never constructed as-is; only the
// prefixed strategies can reach it.
//
// When nothing constructs, the returned error wraps a *Failure listing every
// identifier that was tried, in the order it was tried, so configuration
// authors can tell a typo from a missing prefix.
//
// A Factory is immutable after New. Each call keeps its attempt record on its
// own stack, so one Factory may serve any number of goroutines.
package resolver
