// Package eslint regenerates the per-package ESLint configuration files from
// the shared templates. The source configuration gets an env block listing
// the package's environments; the test configuration is copied as is, with
// the mongo naming exceptions appended for packages that talk to MongoDB.
package eslint
