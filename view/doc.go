// Package view provides a Bubble Tea component that hosts a document behind
// a virtualized line window.
//
// The component owns the scroll model, feeds document edits and input to the
// viewlines controller as view events, and draws the rows the controller
// commits.
package view
