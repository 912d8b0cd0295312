// Package cowfile loads and renders cowfiles, the templates that draw the
// figure under a balloon.
//
// A cowfile is plain text. Lines starting with "##" are comments and any line
// containing "EOC" is a heredoc marker; both are dropped when rendering. The
// remaining lines are the figure, which may use the placeholders $eyes,
// $thoughts and $tongue, and the escapes \\ and \@ for literal backslashes and
// at signs.
//
// Cows are resolved in order:
//  1. a name containing ".cow" is read as a file path
//  2. <dir>/<name>.cow for each directory of the catalog search path
//  3. built-in cows (embedded in binary)
package cowfile
