// Package config resolves the tool settings from flags, CATAPULT_SCRIPTS_*
// environment variables and an optional .catapult-scripts.yaml file in the
// source-tree root, in that order of precedence. Every setting has a default
// that reproduces the plain zero-argument behaviour.
package config
