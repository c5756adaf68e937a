package network_wifi

import "strings"

// SplitEscaped splits s on sep, except where sep is preceded by a backslash.
// A backslash always makes the next character literal, so `\\` yields `\`.
// A trailing lone backslash is dropped.
func SplitEscaped(s string, sep rune) []string {
	var result []string
	var current strings.Builder
	escaped := false

	for _, r := range s {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			if r == sep {
				result = append(result, current.String())
				current.Reset()
				continue
			}
		}
		escaped = false
		current.WriteRune(r)
	}

	return append(result, current.String())
}
