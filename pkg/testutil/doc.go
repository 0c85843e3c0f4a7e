// Package testutil provides utilities for testing svgset components.
//
// Key components:
//   - SourceTree: declarative builder for an icon source directory on an
//     in-memory filesystem
//   - SVG and sample documents for valid and broken icons
//
// All test data is defined inline; tests should use the memory filesystem
// unless they exercise the OS backend itself.
package testutil
