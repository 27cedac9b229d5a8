// Package hcl provides the HCL implementation of the codec.Loader interface.
// It parses an `automaton` block, decodes it with gohcl and converts the
// transition targets through go-cty, returning the same model and error types
// as the text loader.
package hcl
