// Package version implements the version-string arithmetic used when the
// SDK is released: the minor component of MAJOR.MINOR.PATCH is incremented
// while MAJOR and PATCH are carried over verbatim.
package version
