package network_wifi

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetshOutput(t *testing.T) {
	result := ParseNetshOutput(readFixture(t, "netsh.txt"))
	require.Empty(t, result.Diagnostics)

	want := []AccessPoint{
		{SSID: "MyHomeNetwork", BSSID: "a0:63:91:2b:9e:65", Quality: 99, Security: SecurityText("WPA2-Personal")},
		{SSID: "MyHomeNetwork", BSSID: "a0:63:91:2b:9e:66", Quality: 84, Security: SecurityText("WPA2-Personal")},
		{SSID: "Free WiFi", BSSID: "00:1a:1e:8b:52:a1", Quality: 31, Security: SecurityText("Open")},
		{SSID: " ", BSSID: "9c:c9:eb:44:55:66", Quality: 0, Security: SecurityText("WPA2-Enterprise")},
	}

	require.Len(t, result.AccessPoints, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(result.AccessPoints[i]), "record %d: want %s, got %s", i, want[i], result.AccessPoints[i])
	}
}

func TestParseNetshOutputLocalized(t *testing.T) {
	output := strings.Join([]string{
		"SSID 1 : Büro",
		"    Netzwerktyp             : Infrastruktur",
		"    Authentifizierung       : WPA2-Personal",
		"    Verschlüsselung         : CCMP",
		"    BSSID 1                 : 10:fe:ed:11:22:33",
		"         Signal             : 67%",
	}, "\n")

	result := ParseNetshOutput(output)
	require.Len(t, result.AccessPoints, 1)
	assert.True(t, AccessPoint{
		SSID:     "Büro",
		BSSID:    "10:fe:ed:11:22:33",
		Quality:  67,
		Security: SecurityText("WPA2-Personal"),
	}.Equal(result.AccessPoints[0]))
}

func TestParseNetshOutputKeepsSSIDSpacing(t *testing.T) {
	output := strings.Join([]string{
		"SSID 1 : My  Net: 5G",
		"    Network type            : Infrastructure",
		"    Authentication          : WPA2-Personal",
		"    Encryption              : CCMP",
		"    BSSID 1                 : a0:63:91:2b:9e:65",
		"         Signal             : 80%",
		"",
		"SSID 2 : ",
		"    Network type            : Infrastructure",
		"    Authentication          : Open",
		"    Encryption              : None",
		"    BSSID 1                 : 00:1a:1e:8b:52:a1",
		"         Signal             : 20%",
	}, "\n")

	result := ParseNetshOutput(output)
	require.Len(t, result.AccessPoints, 2)
	assert.Equal(t, "My  Net: 5G", result.AccessPoints[0].SSID)
	assert.Equal(t, " ", result.AccessPoints[1].SSID)
}

func TestParseNetshOutputSkipsBadSignal(t *testing.T) {
	output := strings.Join([]string{
		"SSID 1 : Home",
		"    Network type            : Infrastructure",
		"    Authentication          : WPA2-Personal",
		"    Encryption              : CCMP",
		"    BSSID 1                 : a0:63:91:2b:9e:65",
		"         Signal             : unknown",
		"    BSSID 2                 : a0:63:91:2b:9e:66",
		"         Signal             : 40%",
		"    BSSID 3                 : a0:63:91:2b:9e:67",
	}, "\n")

	result := ParseNetshOutput(output)
	require.Len(t, result.AccessPoints, 1)
	assert.Equal(t, "a0:63:91:2b:9e:66", result.AccessPoints[0].BSSID)
	assert.Equal(t, 40, result.AccessPoints[0].Quality)

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, 6, result.Diagnostics[0].Line)
	assert.Equal(t, 9, result.Diagnostics[1].Line)
	for _, d := range result.Diagnostics {
		assert.True(t, errors.Is(d.Err, ErrMalformedLine))
	}
}

func TestParseNetshOutputWithoutBSSID(t *testing.T) {
	output := "SSID 1 : Home\n    Network type : Infrastructure\n    Authentication : Open\n"
	result := ParseNetshOutput(output)
	assert.Empty(t, result.AccessPoints)
	assert.Empty(t, result.Diagnostics)
}
