// Package bump increments the SDK version across the package tree. The self
// package has the version field of its manifest and lockfile incremented;
// every dependent package has its recorded dependency on the self package
// incremented to match. Packages are processed in plan order and the first
// error stops the run; files already written stay written.
package bump
