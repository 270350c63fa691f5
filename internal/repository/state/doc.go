// Package state implements persistence for the safety-check Session.
//
// The FileRepository stores and loads the session as JSON on disk and exposes
// a Repository interface that the monitor service depends on.
package state
