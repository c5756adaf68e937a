package network_wifi

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// AccessPoint is a single visible radio as reported by the platform scan tool.
type AccessPoint struct {
	SSID     string   `json:"ssid"`
	BSSID    string   `json:"bssid"`
	Quality  int      `json:"quality"`
	Security Security `json:"security"`
}

func (a AccessPoint) Equal(b AccessPoint) bool {
	return a.SSID == b.SSID &&
		a.BSSID == b.BSSID &&
		a.Quality == b.Quality &&
		a.Security.Equal(b.Security)
}

func (a AccessPoint) String() string {
	return fmt.Sprintf("%q (%s) quality=%d security=%s", a.SSID, a.BSSID, a.Quality, a.Security)
}

/* Security
 *
 * Tools disagree on how security is reported. airport, netsh
 * and nmcli give a single descriptor ("WPA2(PSK/AES/AES)",
 * "WPA2-Personal", "WPA1 WPA2"), iwlist gives one line per
 * information element. Security keeps whichever shape the
 * parser produced, and encodes to JSON as a string or as an
 * array accordingly.
 */

type Security struct {
	text   string
	tokens []string
	list   bool
}

func SecurityText(text string) Security {
	return Security{text: text}
}

func SecurityTokens(tokens ...string) Security {
	return Security{tokens: slices.Clone(tokens), list: true}
}

func (s Security) IsList() bool {
	return s.list
}

// Text returns the descriptor, or the tokens joined with ", " for token lists.
func (s Security) Text() string {
	if s.list {
		return strings.Join(s.tokens, ", ")
	}
	return s.text
}

// Tokens returns a copy of the token list. A non-empty text descriptor is
// returned as a single token.
func (s Security) Tokens() []string {
	if s.list {
		return slices.Clone(s.tokens)
	}
	if s.text == "" {
		return nil
	}
	return []string{s.text}
}

func (s Security) Equal(o Security) bool {
	if s.list != o.list {
		return false
	}
	if s.list {
		return slices.Equal(s.tokens, o.tokens)
	}
	return s.text == o.text
}

func (s Security) String() string {
	if s.list {
		return "[" + s.Text() + "]"
	}
	return s.text
}

func (s Security) MarshalJSON() ([]byte, error) {
	if s.list {
		tokens := s.tokens
		if tokens == nil {
			tokens = []string{}
		}
		return json.Marshal(tokens)
	}
	return json.Marshal(s.text)
}

func (s *Security) UnmarshalJSON(b []byte) error {
	var tokens []string
	if err := json.Unmarshal(b, &tokens); err == nil {
		*s = SecurityTokens(tokens...)
		return nil
	}

	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return fmt.Errorf("security must be a string or a list of strings: %w", err)
	}
	*s = SecurityText(text)
	return nil
}

// RSSIToQuality maps an RSSI in dBm onto the 0-200 quality scale. The result
// is not clamped.
func RSSIToQuality(rssi int) int {
	return 2 * (rssi + 100)
}

// Diagnostic describes a line (or stanza) a parser could not turn into a record.
type Diagnostic struct {
	Line int
	Text string
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %v: %q", d.Line, d.Err, d.Text)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

type ParseResult struct {
	AccessPoints []AccessPoint
	Diagnostics  []Diagnostic
}

func (r *ParseResult) add(ap AccessPoint) {
	r.AccessPoints = append(r.AccessPoints, ap)
}

func (r *ParseResult) skip(line int, text string, err error) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Line: line, Text: text, Err: err})
}

// Parser turns the text output of one scan tool into access points. Parsers
// are pure: they keep no state between calls.
type Parser interface {
	Parse(output string) ParseResult
}

type ParserFunc func(output string) ParseResult

func (f ParserFunc) Parse(output string) ParseResult {
	return f(output)
}

// splitLines splits tool output on newlines, dropping carriage returns left
// over from Windows line endings.
func splitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

// afterSeparator returns the trimmed text following the first ":" in line.
func afterSeparator(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}
