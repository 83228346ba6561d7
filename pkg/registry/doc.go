// Package registry provides a generic, name-keyed registry. A registry can be
// frozen once populated, after which it only serves lookups; frozen
// registries back fixed constructor tables such as loader.FactoryLoader.
package registry
