package model

// Package model defines the application state, the closed set of messages
// the UI emits, and Update, the single transition function applying a
// message to the state. Update performs no I/O; it returns Effects for the
// caller to run.
