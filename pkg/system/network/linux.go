package network

import (
	"errors"
	"fmt"

	"github.com/mdlayher/wifi"
)

var ErrUnknownInterface = errors.New("no such wireless interface")

type Interface struct {
	Name         string `json:"name"`
	HardwareAddr string `json:"hardwareAddr"`
	PHY          int    `json:"phy"`
	Type         string `json:"type"`
	Frequency    int    `json:"frequency,omitempty"` // MHz, 0 when not associated
}

// ListInterfaces asks nl80211 for the wireless interfaces. Only works on
// Linux; elsewhere mdlayher/wifi returns an error.
func ListInterfaces() ([]Interface, error) {
	wifiClient, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi interface client: %w", err)
	}
	defer wifiClient.Close()

	wifiInterfaces, err := wifiClient.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %w", err)
	}

	out := []Interface{}
	for _, wifiInterface := range wifiInterfaces {
		// nl80211 also reports P2P devices without a netdev.
		if wifiInterface.Name == "" {
			continue
		}
		out = append(out, Interface{
			Name:         wifiInterface.Name,
			HardwareAddr: wifiInterface.HardwareAddr.String(),
			PHY:          wifiInterface.PHY,
			Type:         wifiInterface.Type.String(),
			Frequency:    wifiInterface.Frequency,
		})
	}
	return out, nil
}

func findInterface(ifaces []Interface, name string) error {
	for _, iface := range ifaces {
		if iface.Name == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownInterface, name)
}
