package network

import (
	"context"
	"fmt"

	accesspoints "github.com/dogeorg/accesspoints/pkg"
	network_wifi "github.com/dogeorg/accesspoints/pkg/system/network/wifi"
	"github.com/sirupsen/logrus"
)

// Manager ties the scan configuration to the host: it picks the scan tool,
// checks the requested device and runs scans with the configured timeout.
type Manager struct {
	Config accesspoints.ScanConfig
	Prober *Prober
	Runner network_wifi.Runner

	log logrus.FieldLogger
}

func NewManager(cfg accesspoints.ScanConfig, prober *Prober, log logrus.FieldLogger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if prober == nil {
		prober = NewProber(log)
	}
	return &Manager{
		Config: cfg,
		Prober: prober,
		Runner: network_wifi.ExecRunner{},
		log:    log,
	}
}

// NewScanner builds a scanner for this host using the default prober.
func NewScanner(ctx context.Context, cfg accesspoints.ScanConfig, log logrus.FieldLogger) (*network_wifi.Scanner, error) {
	return NewManager(cfg, nil, log).Scanner(ctx)
}

func (m *Manager) Variant(ctx context.Context) (network_wifi.Variant, error) {
	if m.Config.Tool != "" {
		return network_wifi.ParseVariant(m.Config.Tool)
	}
	variant := m.Prober.Detect(ctx)
	if variant == network_wifi.VariantUnsupported {
		return variant, fmt.Errorf("%w: %s", network_wifi.ErrUnsupportedPlatform, m.Prober.HostOS(ctx))
	}
	return variant, nil
}

func (m *Manager) Scanner(ctx context.Context) (*network_wifi.Scanner, error) {
	variant, err := m.Variant(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.checkDevice(variant); err != nil {
		return nil, err
	}

	scanner := network_wifi.NewScanner(variant, m.Config.Device, m.Runner, m.log)
	scanner.Sudo = m.Config.Sudo && !m.Prober.IsRoot()
	return scanner, nil
}

// checkDevice rejects a device nl80211 does not know about. If the interfaces
// cannot be listed the device is passed to the scan tool unchecked.
func (m *Manager) checkDevice(variant network_wifi.Variant) error {
	if m.Config.Device == "" {
		return nil
	}
	if variant != network_wifi.VariantIWList && variant != network_wifi.VariantNMCLI {
		return nil
	}

	ifaces, err := m.Prober.Interfaces()
	if err != nil {
		m.log.WithError(err).Debug("cannot list wireless interfaces, not checking device")
		return nil
	}
	return findInterface(ifaces, m.Config.Device)
}

func (m *Manager) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.Config.Timeout > 0 {
		return context.WithTimeout(ctx, m.Config.Timeout)
	}
	return context.WithCancel(ctx)
}

func (m *Manager) Scan(ctx context.Context) (network_wifi.ScanResult, error) {
	scanner, err := m.Scanner(ctx)
	if err != nil {
		return network_wifi.ScanResult{}, err
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	return scanner.Scan(ctx)
}

// Output returns the decoded tool output without parsing it.
func (m *Manager) Output(ctx context.Context) (string, error) {
	scanner, err := m.Scanner(ctx)
	if err != nil {
		return "", err
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	return scanner.Output(ctx)
}

func (m *Manager) Interfaces() ([]Interface, error) {
	return m.Prober.Interfaces()
}
