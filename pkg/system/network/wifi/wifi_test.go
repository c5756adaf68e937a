package network_wifi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func TestRSSIToQuality(t *testing.T) {
	assert.Equal(t, 0, RSSIToQuality(-100))
	assert.Equal(t, 100, RSSIToQuality(-50))
	assert.Equal(t, 200, RSSIToQuality(0))

	for r := -100; r <= 0; r++ {
		assert.Equal(t, 2*(r+100), RSSIToQuality(r))
	}

	// Out of range input is passed through, not clamped.
	assert.Equal(t, -20, RSSIToQuality(-110))
	assert.Equal(t, 210, RSSIToQuality(5))
}

func TestAccessPointEqual(t *testing.T) {
	base := AccessPoint{SSID: "Home", BSSID: "a0:63:91:2b:9e:65", Quality: 72, Security: SecurityText("WPA2")}

	tests := []struct {
		name  string
		other AccessPoint
		equal bool
	}{
		{"identical", base, true},
		{"ssid differs", AccessPoint{SSID: "Office", BSSID: base.BSSID, Quality: 72, Security: SecurityText("WPA2")}, false},
		{"bssid differs", AccessPoint{SSID: "Home", BSSID: "", Quality: 72, Security: SecurityText("WPA2")}, false},
		{"quality differs", AccessPoint{SSID: "Home", BSSID: base.BSSID, Quality: 71, Security: SecurityText("WPA2")}, false},
		{"security differs", AccessPoint{SSID: "Home", BSSID: base.BSSID, Quality: 72, Security: SecurityText("WPA")}, false},
		{"security shape differs", AccessPoint{SSID: "Home", BSSID: base.BSSID, Quality: 72, Security: SecurityTokens("WPA2")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, base.Equal(tt.other))
			assert.Equal(t, tt.equal, tt.other.Equal(base))
		})
	}
}

func TestSecurityTokensAreCopied(t *testing.T) {
	tokens := []string{"WPA Version 1", "IEEE 802.11i/WPA2 Version 1"}
	sec := SecurityTokens(tokens...)
	tokens[0] = "changed"

	assert.Equal(t, []string{"WPA Version 1", "IEEE 802.11i/WPA2 Version 1"}, sec.Tokens())

	out := sec.Tokens()
	out[1] = "changed"
	assert.Equal(t, "IEEE 802.11i/WPA2 Version 1", sec.Tokens()[1])
}

func TestSecurityShapes(t *testing.T) {
	text := SecurityText("WPA2(PSK/AES/AES)")
	assert.False(t, text.IsList())
	assert.Equal(t, "WPA2(PSK/AES/AES)", text.Text())
	assert.Equal(t, []string{"WPA2(PSK/AES/AES)"}, text.Tokens())
	assert.Nil(t, SecurityText("").Tokens())

	list := SecurityTokens("WPA Version 1", "IEEE 802.11i/WPA2 Version 1")
	assert.True(t, list.IsList())
	assert.Equal(t, "WPA Version 1, IEEE 802.11i/WPA2 Version 1", list.Text())

	assert.True(t, SecurityTokens().Equal(SecurityTokens()))
	assert.False(t, SecurityTokens().Equal(SecurityText("")))
}

func TestSecurityJSON(t *testing.T) {
	aps := []AccessPoint{
		{SSID: "Home", BSSID: "a0:63:91:2b:9e:65", Quality: 72, Security: SecurityText("WPA2")},
		{SSID: "Free WiFi", BSSID: "00:1a:1e:8b:52:a1", Quality: 29, Security: SecurityTokens()},
		{SSID: "Office", BSSID: "10:fe:ed:11:22:33", Quality: 55, Security: SecurityTokens("WPA Version 1")},
	}

	b, err := json.Marshal(aps)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"ssid":"Home","bssid":"a0:63:91:2b:9e:65","quality":72,"security":"WPA2"},
		{"ssid":"Free WiFi","bssid":"00:1a:1e:8b:52:a1","quality":29,"security":[]},
		{"ssid":"Office","bssid":"10:fe:ed:11:22:33","quality":55,"security":["WPA Version 1"]}
	]`, string(b))

	var decoded []AccessPoint
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded, len(aps))
	for i := range aps {
		assert.True(t, aps[i].Equal(decoded[i]), "record %d: %s != %s", i, aps[i], decoded[i])
	}

	var bad Security
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &bad))
}

func TestParsersAreIdempotent(t *testing.T) {
	fixtures := map[string]Parser{
		"airport.txt":           ParserFunc(ParseAirportOutput),
		"airport_wide.txt":      ParserFunc(ParseAirportOutput),
		"airport_multibyte.txt": ParserFunc(ParseAirportOutput),
		"netsh.txt":             ParserFunc(ParseNetshOutput),
		"iwlist.txt":            ParserFunc(ParseIWListOutput),
		"nmcli.txt":             ParserFunc(ParseNMCLIOutput),
	}

	for name, parser := range fixtures {
		t.Run(name, func(t *testing.T) {
			output := readFixture(t, name)
			first := parser.Parse(output)
			second := parser.Parse(output)

			require.NotEmpty(t, first.AccessPoints)
			require.Len(t, second.AccessPoints, len(first.AccessPoints))
			for i := range first.AccessPoints {
				assert.True(t, first.AccessPoints[i].Equal(second.AccessPoints[i]))
			}
		})
	}
}

func TestParsersHandleEmptyInput(t *testing.T) {
	parsers := []Parser{
		ParserFunc(ParseAirportOutput),
		ParserFunc(ParseNetshOutput),
		ParserFunc(ParseIWListOutput),
		ParserFunc(ParseNMCLIOutput),
	}

	for _, parser := range parsers {
		for _, input := range []string{"", "\n", "\r\n\r\n", "sudo: iwlist: command not found"} {
			result := parser.Parse(input)
			assert.Empty(t, result.AccessPoints)
		}
	}
}
