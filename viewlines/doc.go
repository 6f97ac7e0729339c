// Package viewlines keeps the window of materialized lines for a viewport
// and the state derived from it: the widest rendered line, the validity of
// the fixed-width layout shortcut, and pending reveal work.
//
// Everything runs on the caller's update loop. Deferred work is delivered
// back as Bubble Tea messages, so there is no locking.
package viewlines
