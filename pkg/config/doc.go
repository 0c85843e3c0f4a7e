// Package config handles configuration management for svgset.
//
// Configuration is layered, later sources winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. svgset.toml in the working directory, or the file given with --config
//  3. SVGSET_<SECTION>_<KEY> environment variables
//  4. command line overrides
//
// List values coming from the environment are comma separated, for example
// SVGSET_NAMING_STRIP_TOKENS="res-,arch-".
package config
