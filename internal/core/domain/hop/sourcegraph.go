package hop

import (
	"strings"
	"unicode"
)

// SourceGraph pattern types.
const (
	PatternLiteral    = "literal"
	PatternRegexp     = "regexp"
	PatternStructural = "structural"
)

/*
sourceGraph builds a search URL. When the first word of args is a known flag
("re", "sl", "st", optionally suffixed with "c" for case sensitivity) it
selects the pattern type and case mode and the rest is the query. Otherwise
the whole of args is a literal query and no case parameter is sent.
*/
func sourceGraph(w string, flagSet FlagSet, args string) string {
	// Without a space the candidate is the empty string.
	offset := strings.IndexByte(args, ' ')
	if offset < 0 {
		offset = 0
	}
	if !flagSet.Contains(args[:offset]) {
		return Encode(w + "search?q=" + args + "&patternType=" + PatternLiteral)
	}

	flags, query := args[:offset], strings.TrimLeftFunc(args[offset:], unicode.IsSpace)
	patternType, caseSensitive := parseSourceGraphFlags(flags)

	caseParam := "false"
	if caseSensitive {
		caseParam = "true"
	}
	return Encode(w + "search?q=" + query + "&patternType=" + patternType + "&case=" + caseParam)
}

// parseSourceGraphFlags reads the pattern type from the first two bytes of
// flags and the case mode from the third. Short input yields literal and
// case-insensitive.
func parseSourceGraphFlags(flags string) (patternType string, caseSensitive bool) {
	patternType = PatternLiteral
	if len(flags) >= 2 {
		switch flags[:2] {
		case "re":
			patternType = PatternRegexp
		case "sl":
			patternType = PatternLiteral
		case "st":
			patternType = PatternStructural
		}
	}
	caseSensitive = (len(flags) == 3 && flags[2] == 'c') || patternType == PatternStructural
	return patternType, caseSensitive
}
