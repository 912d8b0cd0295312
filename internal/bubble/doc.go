// Package bubble builds the speech and thought balloons drawn above a cow.
//
// A balloon is built in two steps. [Wrap] splits the message into lines no
// longer than the requested width (16 below), breaking after spaces so words
// stay whole. [Frame] then bookends each line with glyphs chosen by its
// position and pads every line to a common width between an underscore top
// border and a hyphen bottom border:
//
//	 __________________
//	/ The quick brown  \
//	| fox jumps over   |
//	\ the lazy dog     /
//	 ------------------
//
// Messages of one or two lines use the single-line glyphs on every line.
package bubble
