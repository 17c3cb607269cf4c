// Package registry holds the package tables the tools run over: which package
// is the SDK, which packages depend on it, and which ESLint environments and
// options each package gets.
//
// The default tables are compiled in from packages.yaml via //go:embed. A
// different set of packages can be supplied as a YAML file with the same
// layout, which is how tests substitute their own trees.
package registry
