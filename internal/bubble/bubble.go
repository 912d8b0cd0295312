package bubble

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style holds the glyphs that bookend balloon lines.
type Style struct {
	SingleLeft  string
	SingleRight string
	TopLeft     string
	MidLeft     string
	BottomLeft  string
	TopRight    string
	MidRight    string
	BottomRight string
}

var speech = Style{
	SingleLeft:  "<",
	SingleRight: ">",
	TopLeft:     "/",
	MidLeft:     "|",
	BottomLeft:  "\\",
	TopRight:    "\\",
	MidRight:    "|",
	BottomRight: "/",
}

var thought = Style{
	SingleLeft:  "(",
	SingleRight: ")",
	TopLeft:     "(",
	MidLeft:     "(",
	BottomLeft:  "(",
	TopRight:    ")",
	MidRight:    ")",
	BottomRight: ")",
}

// Speech returns the glyphs for a spoken message.
func Speech() Style { return speech }

// Thought returns the glyphs for a thought.
func Thought() Style { return thought }

// For returns the thought style when think is set and the speech style otherwise.
func For(think bool) Style {
	if think {
		return thought
	}
	return speech
}

// bookends returns the left and right glyphs for line index of count lines.
func (s Style) bookends(index, count int) (string, string) {
	switch {
	case count <= 2:
		return s.SingleLeft, s.SingleRight
	case index == 0:
		return s.TopLeft, s.TopRight
	case index == count-1:
		return s.BottomLeft, s.BottomRight
	default:
		return s.MidLeft, s.MidRight
	}
}

// Build renders message as a complete balloon. When wrap is false, or width
// is not positive, the whole message sits on a single line.
func Build(message string, width int, think, wrap bool) string {
	lines := []string{message}
	if wrap {
		lines = Wrap(message, width)
	}
	return strings.Join(Frame(lines, For(think)), "\n")
}

// Wrap splits message into lines of at most width runes.
//
// Each line ends just after the last space that fits in the window, so words
// are never split when a space is available. A window without any space is cut
// hard at width. The remainder of the message is always the last line, which
// makes the result non-empty even for an empty message.
func Wrap(message string, width int) []string {
	runes := []rune(message)
	var lines []string
	offset := 0
	if width > 0 {
		for offset+width < len(runes) {
			cut := breakPoint(runes, offset, width)
			lines = append(lines, string(runes[offset:cut]))
			offset = cut
		}
	}
	return append(lines, string(runes[offset:]))
}

// breakPoint returns the end of the line starting at offset.
func breakPoint(runes []rune, offset, width int) int {
	end := offset + width
	for cut := end; cut > offset; cut-- {
		if runes[cut-1] == ' ' {
			return cut
		}
	}
	return end
}

// Frame bookends lines with glyphs from style, pads them to a common width
// and surrounds them with the top and bottom borders.
func Frame(lines []string, style Style) []string {
	framed := make([]string, len(lines))
	closers := make([]string, len(lines))
	longest := 0
	for i, line := range lines {
		left, right := style.bookends(i, len(lines))
		framed[i] = left + " " + line + " " + right
		closers[i] = right
		longest = max(longest, runewidth.StringWidth(framed[i]))
	}

	result := make([]string, 0, len(lines)+2)
	result = append(result, border("_", longest))
	for i, line := range framed {
		result = append(result, pad(line, closers[i], longest))
	}
	return append(result, border("-", longest))
}

// pad inserts spaces before the closing glyph until line is width cells wide.
func pad(line, closer string, width int) string {
	missing := width - runewidth.StringWidth(line)
	if missing <= 0 {
		return line
	}
	body := strings.TrimSuffix(line, closer)
	return body + strings.Repeat(" ", missing) + closer
}

// border draws a balloon edge for framed lines of the given width.
func border(glyph string, width int) string {
	return " " + strings.Repeat(glyph, max(width-2, 0))
}
