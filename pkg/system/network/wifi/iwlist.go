package network_wifi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var _ Parser = ParserFunc(ParseIWListOutput)

var fractionRegex = regexp.MustCompile(`(\d+)/\d+`)

// iwlistStanza is the cell being accumulated between two `Cell NN - Address:` lines.
type iwlistStanza struct {
	bssid      string
	ssid       string
	quality    int
	hasQuality bool
	security   []string
	start      int
	text       string
}

func (s *iwlistStanza) flush(result *ParseResult) {
	if s.bssid == "" {
		return
	}
	if !s.hasQuality {
		result.skip(s.start+1, s.text, fmt.Errorf("%w: no quality in cell %s", ErrMalformedLine, s.bssid))
	} else {
		result.add(AccessPoint{
			SSID:     s.ssid,
			BSSID:    s.bssid,
			Quality:  s.quality,
			Security: SecurityTokens(s.security...),
		})
	}
	*s = iwlistStanza{}
}

// ParseIWListOutput parses `iwlist scan`. Every information element line
// (`IE: IEEE 802.11i/WPA2 Version 1`) other than `IE: Unknown` adds one token
// to the access point's security list.
func ParseIWListOutput(output string) ParseResult {
	var result ParseResult
	var stanza iwlistStanza

	for num, raw := range splitLines(output) {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "Cell"):
			stanza.flush(&result)
			stanza = iwlistStanza{
				bssid: afterSeparator(line),
				start: num,
				text:  raw,
			}

		case stanza.bssid == "":
			// Interface banners ("wlan0     Scan completed :") and anything
			// else before the first cell.

		case strings.HasPrefix(line, "ESSID"):
			stanza.ssid = strings.Trim(afterSeparator(line), `"`)

		case strings.HasPrefix(line, "IE:"):
			payload := strings.TrimSpace(line[len("IE:"):])
			label, _, _ := strings.Cut(payload, ":")
			if strings.TrimSpace(label) == "Unknown" {
				continue
			}
			stanza.security = append(stanza.security, payload)

		case !stanza.hasQuality && num >= stanza.start+2:
			m := fractionRegex.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			quality, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			stanza.quality, stanza.hasQuality = quality, true
		}
	}
	stanza.flush(&result)

	return result
}
