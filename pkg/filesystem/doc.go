// Package filesystem provides filesystem implementations for svgset.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed one used with
// MemMapFs in tests.
package filesystem
