package ui

// Package ui contains the Fyne-based desktop user interface: navigation bar,
// the three pages, the context drawer, the popup and the animated canvas.
// Widgets never change state themselves; they emit model messages and
// RootUI.Render redraws from the resulting state.
