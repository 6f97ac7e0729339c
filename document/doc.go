// Package document implements the line-oriented text model a view renders.
//
// Coordinates are 1-based: lines run from 1 to LineCount and columns are
// grapheme columns from LineMinColumn to LineMaxColumn. Every edit returns
// the view events it produced so the host can forward them to the view.
package document
