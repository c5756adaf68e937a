package network_wifi

import (
	"fmt"
	"strconv"
	"strings"
)

var _ Parser = ParserFunc(ParseNetshOutput)

/* netsh wlan show networks mode=bssid
 *
 *   SSID 1 : HomeNetwork
 *       Network type            : Infrastructure
 *       Authentication          : WPA2-Personal
 *       Encryption              : CCMP
 *       BSSID 1                 : 00:11:22:33:44:55
 *            Signal             : 99%
 *            Radio type         : 802.11n
 *
 * Labels are localized, so authentication and signal are
 * found by their offset from the SSID and BSSID lines rather
 * than by name. One network may list several BSSIDs; each
 * becomes its own record sharing the SSID and security.
 */

// netshRecord is the access point being accumulated. It is emitted once a
// BSSID has been seen.
type netshRecord struct {
	ssid     string
	security string
	bssid    string
	quality  int
	line     int
	text     string
	err      error
	started  bool
}

func (r *netshRecord) flush(result *ParseResult) {
	if !r.started {
		return
	}
	if r.err != nil {
		result.skip(r.line, r.text, r.err)
	} else {
		result.add(AccessPoint{
			SSID:     r.ssid,
			BSSID:    r.bssid,
			Quality:  r.quality,
			Security: SecurityText(r.security),
		})
	}
	*r = netshRecord{}
}

func ParseNetshOutput(output string) ParseResult {
	var result ParseResult
	var record netshRecord

	ssid, security := "", ""
	ssidLine, bssidLine := -1, -1

	for num, raw := range splitLines(output) {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "SSID"):
			record.flush(&result)
			ssid = netshSSID(line)
			security = ""
			ssidLine, bssidLine = num, -1

		case ssidLine >= 0 && num == ssidLine+2:
			security = afterSeparator(line)

		case strings.HasPrefix(line, "BSSID"):
			record.flush(&result)
			record = netshRecord{
				ssid:     ssid,
				security: security,
				bssid:    afterSeparator(line),
				line:     num + 1,
				text:     raw,
				err:      fmt.Errorf("%w: no signal line", ErrMalformedLine),
				started:  true,
			}
			bssidLine = num

		case bssidLine >= 0 && num == bssidLine+1:
			record.line, record.text = num+1, raw
			value := strings.TrimSuffix(afterSeparator(line), "%")
			quality, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				record.err = fmt.Errorf("%w: bad signal %q: %w", ErrMalformedLine, value, err)
				continue
			}
			record.quality, record.err = quality, nil
		}
	}
	record.flush(&result)

	return result
}

// netshSSID returns the network name from an `SSID <n> : <name>` line as
// written. Hidden networks have no name and become a single space.
func netshSSID(line string) string {
	name := afterSeparator(line)
	if name == "" {
		return " "
	}
	return name
}
