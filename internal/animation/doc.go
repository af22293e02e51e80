// Package animation computes the decorative canvas shown on the first page:
// pastel circles, hearts and sparkle stars orbiting the frame center and
// shying away from the mouse cursor. Frame is a pure function of time,
// cursor and bounds; Rasterize turns its output into pixels.
package animation
