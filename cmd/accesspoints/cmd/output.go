package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	accesspoints "github.com/dogeorg/accesspoints/pkg"
	"github.com/dogeorg/accesspoints/pkg/system/network"
	network_wifi "github.com/dogeorg/accesspoints/pkg/system/network/wifi"
	"github.com/olekukonko/tablewriter"
)

func printJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func printAccessPoints(w io.Writer, format string, aps []network_wifi.AccessPoint) error {
	if format != accesspoints.FormatTable {
		if aps == nil {
			aps = []network_wifi.AccessPoint{}
		}
		return printJSON(w, aps)
	}

	table := tablewriter.NewWriter(w)
	table.Header("SSID", "BSSID", "Quality", "Security")
	for _, ap := range aps {
		if err := table.Append([]string{ap.SSID, ap.BSSID, strconv.Itoa(ap.Quality), ap.Security.Text()}); err != nil {
			return err
		}
	}
	return table.Render()
}

func printInterfaces(w io.Writer, format string, ifaces []network.Interface) error {
	if format != accesspoints.FormatTable {
		return printJSON(w, ifaces)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Name", "MAC", "PHY", "Type", "Frequency")
	for _, iface := range ifaces {
		freq := ""
		if iface.Frequency > 0 {
			freq = fmt.Sprintf("%d MHz", iface.Frequency)
		}
		if err := table.Append([]string{iface.Name, iface.HardwareAddr, fmt.Sprintf("phy%d", iface.PHY), iface.Type, freq}); err != nil {
			return err
		}
	}
	return table.Render()
}
