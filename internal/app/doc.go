// Package app contains the converter's application lifecycle: its
// configuration, logger construction and the load, validate, convert and
// write pipeline, decoupled from the command-line entrypoint.
package app
