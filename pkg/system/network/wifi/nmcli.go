package network_wifi

import (
	"fmt"
	"strconv"
	"strings"
)

var _ Parser = ParserFunc(ParseNMCLIOutput)

// nmcli -t escapes ":" and "\" inside values with a backslash, which matters
// for the BSSID: `Home:F8\:1A\:67\:00\:00\:01:72:WPA2`.
const nmcliFields = 4

func ParseNMCLIOutput(output string) ParseResult {
	var result ParseResult

	for num, line := range splitLines(output) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := SplitEscaped(line, ':')
		if len(fields) != nmcliFields {
			result.skip(num+1, line, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedLine, nmcliFields, len(fields)))
			continue
		}

		quality, err := strconv.Atoi(fields[2])
		if err != nil {
			result.skip(num+1, line, fmt.Errorf("%w: bad signal %q: %w", ErrMalformedLine, fields[2], err))
			continue
		}

		result.add(AccessPoint{
			SSID:     fields[0],
			BSSID:    fields[1],
			Quality:  quality,
			Security: SecurityText(fields[3]),
		})
	}

	return result
}
