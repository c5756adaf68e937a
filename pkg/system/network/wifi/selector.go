package network_wifi

import (
	"errors"
	"strings"
)

var ErrUnsupportedPlatform = errors.New("no wifi scanner for this platform")

// Variant identifies a platform scan tool together with its parser.
type Variant int

const (
	VariantUnsupported Variant = iota
	VariantAirport
	VariantNetsh
	VariantNMCLI
	VariantIWList
)

type variantEntry struct {
	name    string
	parser  Parser
	command func(device string, sudo bool) []string
}

var variants = map[Variant]variantEntry{
	VariantAirport: {
		name:   "airport",
		parser: ParserFunc(ParseAirportOutput),
		command: func(device string, sudo bool) []string {
			return []string{airportPath, "-s"}
		},
	},
	VariantNetsh: {
		name:   "netsh",
		parser: ParserFunc(ParseNetshOutput),
		command: func(device string, sudo bool) []string {
			cmd := []string{"netsh", "wlan", "show", "networks", "mode=bssid"}
			if device != "" {
				cmd = append(cmd, "interface="+device)
			}
			return cmd
		},
	},
	VariantNMCLI: {
		name:   "nmcli",
		parser: ParserFunc(ParseNMCLIOutput),
		command: func(device string, sudo bool) []string {
			cmd := []string{"nmcli", "-t", "-f", "ssid,bssid,signal,security", "device", "wifi", "list"}
			if device != "" {
				cmd = append(cmd, "ifname", device)
			}
			return cmd
		},
	},
	VariantIWList: {
		name:   "iwlist",
		parser: ParserFunc(ParseIWListOutput),
		command: func(device string, sudo bool) []string {
			cmd := []string{"iwlist"}
			if sudo {
				cmd = append([]string{"sudo"}, cmd...)
			}
			if device != "" {
				cmd = append(cmd, device)
			}
			return append(cmd, "scan")
		},
	},
}

// SelectVariant picks the scan tool for an operating system as reported by
// runtime.GOOS or uname ("Darwin", "linux", ...). On Linux nmcli is preferred
// when NetworkManager is available.
func SelectVariant(osName string, networkManagerAvailable bool) Variant {
	switch strings.ToLower(strings.TrimSpace(osName)) {
	case "darwin":
		return VariantAirport
	case "windows":
		return VariantNetsh
	case "linux":
		if networkManagerAvailable {
			return VariantNMCLI
		}
		return VariantIWList
	default:
		return VariantUnsupported
	}
}

func ParseVariant(name string) (Variant, error) {
	for v, entry := range variants {
		if entry.name == strings.ToLower(name) {
			return v, nil
		}
	}
	return VariantUnsupported, ErrUnsupportedPlatform
}

func (v Variant) String() string {
	if entry, ok := variants[v]; ok {
		return entry.name
	}
	return "unsupported"
}

// Parser returns the parser for v, or nil for VariantUnsupported.
func (v Variant) Parser() Parser {
	return variants[v].parser
}

// Command returns the argv that produces output for v's parser. sudo is only
// honoured by variants that need elevated privileges.
func (v Variant) Command(device string, sudo bool) ([]string, error) {
	entry, ok := variants[v]
	if !ok {
		return nil, ErrUnsupportedPlatform
	}
	return entry.command(device, sudo), nil
}
