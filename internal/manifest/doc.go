// Package manifest describes the npm package descriptors the version tools
// edit (package.json and package-lock.json) and validates their shape against
// embedded JSON schemas before any field is rewritten.
package manifest
