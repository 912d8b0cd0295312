package cowfile

import (
	"strings"
	"unicode"
)

// Placeholders substituted by Render.
const (
	EyesToken     = "$eyes"
	ThoughtsToken = "$thoughts"
	TongueToken   = "$tongue"
)

// Render turns raw cowfile text into a figure. Comment and heredoc marker
// lines are dropped, trailing whitespace is trimmed and the placeholders are
// replaced before escapes are resolved.
func Render(raw, thoughts, eyes, tongue string) string {
	figure := strings.Join(figureLines(raw), "\n")
	figure = strings.TrimRightFunc(figure, unicode.IsSpace)

	figure = strings.ReplaceAll(figure, EyesToken, eyes)
	figure = strings.ReplaceAll(figure, ThoughtsToken, thoughts)
	figure = strings.ReplaceAll(figure, TongueToken, tongue)

	// Escapes resolve in sequence, so \\@ yields @.
	figure = strings.ReplaceAll(figure, `\\`, `\`)
	return strings.ReplaceAll(figure, `\@`, "@")
}

// figureLines returns the lines of raw that belong to the figure.
func figureLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isMetaLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

func isMetaLine(line string) bool {
	return strings.HasPrefix(line, "##") || strings.Contains(line, "EOC")
}

// describe returns the first non-empty comment of raw.
func describe(raw string) string {
	for line := range strings.SplitSeq(raw, "\n") {
		if !strings.HasPrefix(line, "##") {
			continue
		}
		if text := strings.TrimSpace(strings.TrimLeft(line, "#")); text != "" {
			return strings.ReplaceAll(text, `\@`, "@")
		}
	}
	return ""
}
