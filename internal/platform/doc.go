// Package platform provides the filesystem primitives shared by the tools:
// whole-file reads, atomic replacement through a temporary file and rename,
// and template copies that keep the source permissions. All operations go
// through an afero.Fs so a dry run can redirect writes to memory.
package platform
