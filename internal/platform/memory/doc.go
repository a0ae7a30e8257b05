// Package memory provides an in-memory implementation of the store
// interfaces. All state is scoped to the lifetime of the process and is
// lost on restart.
package memory
