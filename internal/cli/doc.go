// Package cli defines the Cobra command tree for the catapult-scripts binary.
// Each file registers one command with the root command. Commands resolve
// settings, build the filesystem and logger, and delegate the work to the
// bump and eslint packages.
package cli
