// Package store defines interfaces for task storage operations. These
// interfaces abstract the underlying storage mechanism from the
// application's core logic, so handlers remain independent of how and
// where tasks are held.
package store
