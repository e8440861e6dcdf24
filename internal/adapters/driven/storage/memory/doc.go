// Package memory provides in-memory implementations of the driven storage
// ports. They back service tests and the --no-save CLI mode.
package memory
