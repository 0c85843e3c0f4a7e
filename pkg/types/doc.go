// Package types defines the interfaces shared across svgset packages that
// would otherwise import each other, most notably the FS abstraction used
// by the importer and the exporter.
package types
