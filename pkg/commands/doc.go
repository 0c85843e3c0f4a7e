// Package commands holds the implementation of every svgset command, one
// subpackage per command. Commands take an options struct, do their work
// through the library packages and return a result for the CLI to render;
// they never print.
package commands
