// Package file provides the TOML-backed configuration store. Settings are
// kept in ~/.scopegen/config.toml unless another directory is given.
package file
