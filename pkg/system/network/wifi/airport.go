package network_wifi

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const airportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"

var _ Parser = ParserFunc(ParseAirportOutput)

var errNoRSSI = errors.New("no RSSI column")

// airport leaves the BSSID blank when location services are off.
var airportBSSIDRegex = regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

// airportColumns holds rune offsets taken from the `airport -s` header:
//
//	                            SSID BSSID             RSSI CHANNEL HT CC SECURITY (auth/unicast/group)
type airportColumns struct {
	ssidEnd       int
	rssiStart     int
	channelStart  int
	securityStart int
}

func parseAirportHeader(line string) (airportColumns, bool) {
	runes := []rune(line)
	idx := func(token string) int {
		i := strings.Index(line, token)
		if i < 0 {
			return -1
		}
		// byte offset -> rune offset
		return len([]rune(line[:i]))
	}

	ssid, rssi, channel, security := idx("SSID"), idx("RSSI"), idx("CHANNEL"), idx("SECURITY")
	if ssid < 0 || rssi < 0 || security < 0 {
		return airportColumns{}, false
	}
	if channel < 0 {
		channel = security
	}

	cols := airportColumns{
		ssidEnd:       ssid + len("SSID"),
		rssiStart:     rssi,
		channelStart:  channel,
		securityStart: security,
	}
	if cols.ssidEnd > len(runes) {
		return airportColumns{}, false
	}
	return cols, true
}

// ParseAirportOutput parses `airport -s`. The SSID column is right aligned to a
// fixed byte width, so every multi-byte rune in the SSID shifts the later
// columns left. Such lines are re-padded before the header offsets are applied.
func ParseAirportOutput(output string) ParseResult {
	var result ParseResult
	var cols airportColumns
	haveHeader := false

	for num, line := range splitLines(output) {
		if !haveHeader {
			if strings.HasPrefix(strings.TrimSpace(line), "SSID BSSID") {
				cols, haveHeader = parseAirportHeader(line)
			}
			continue
		}

		if strings.TrimSpace(line) == "" || strings.Contains(line, "IBSS") {
			continue
		}

		ap, err := parseAirportLine(cols, line)
		if err != nil {
			result.skip(num+1, line, err)
			continue
		}
		result.add(ap)
	}

	return result
}

func parseAirportLine(cols airportColumns, line string) (AccessPoint, error) {
	runes := []rune(line)

	// The header is ASCII, so its offsets are byte offsets as well. The SSID
	// ends at the rune that starts before byte cols.ssidEnd.
	ssidEnd := 0
	for i := range line {
		if i >= cols.ssidEnd {
			break
		}
		ssidEnd++
	}
	if len(line) < cols.ssidEnd {
		ssidEnd += cols.ssidEnd - len(line)
	}

	wide := 0
	for _, r := range column(runes, 0, ssidEnd) {
		if runewidth.RuneWidth(r) == 2 {
			wide++
		}
	}

	// One rune of padding per byte the SSID is longer than its rune count,
	// which is 2*wide for CJK. Wide runes add one more space.
	pad := cols.ssidEnd - ssidEnd
	if wide > 0 {
		pad++
	}
	if pad > 0 {
		padded := make([]rune, 0, len(runes)+pad)
		padded = append(padded, column(runes, 0, ssidEnd)...)
		padded = append(padded, []rune(strings.Repeat(" ", pad))...)
		padded = append(padded, column(runes, ssidEnd, len(runes))...)
		runes = padded
	}

	ssid := strings.TrimSpace(string(column(runes, 0, ssidEnd)))
	bssid := strings.TrimSpace(string(column(runes, cols.ssidEnd, cols.rssiStart)))
	rssiText := strings.TrimSpace(string(column(runes, cols.rssiStart, cols.channelStart)))
	security := strings.TrimSpace(string(column(runes, cols.securityStart, len(runes))))

	if bssid != "" && !airportBSSIDRegex.MatchString(bssid) {
		return AccessPoint{}, fmt.Errorf("%w: bad BSSID %q", ErrMalformedLine, bssid)
	}
	if rssiText == "" {
		return AccessPoint{}, fmt.Errorf("%w: %w", ErrMalformedLine, errNoRSSI)
	}
	rssi, err := strconv.Atoi(rssiText)
	if err != nil {
		return AccessPoint{}, fmt.Errorf("%w: bad RSSI %q: %w", ErrMalformedLine, rssiText, err)
	}

	return AccessPoint{
		SSID:     ssid,
		BSSID:    bssid,
		Quality:  RSSIToQuality(rssi),
		Security: SecurityText(security),
	}, nil
}

// column slices runes[start:end], clamping both bounds to the line.
func column(runes []rune, start, end int) []rune {
	start = min(max(start, 0), len(runes))
	end = min(max(end, start), len(runes))
	return runes[start:end]
}
