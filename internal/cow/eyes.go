package cow

import (
	"maps"
	"slices"
)

// eyeStyles maps eye style names to the glyphs drawn for $eyes.
var eyeStyles = map[string]string{
	"borg":     "==",
	"dead":     "xx",
	"greedy":   "$$",
	"paranoid": "@@",
	"stoned":   "**",
	"tired":    "--",
	"wired":    "OO",
	"youthful": "..",
	"default":  "oo",
}

// Eyes returns the glyphs for a named eye style. Unknown names are returned
// unchanged so callers can pass literal eyes.
func Eyes(style string) string {
	if glyphs, ok := eyeStyles[style]; ok {
		return glyphs
	}
	return style
}

// EyeStyles returns the known eye style names, sorted.
func EyeStyles() []string {
	return slices.Sorted(maps.Keys(eyeStyles))
}
