package network

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/coreos/go-systemd/v22/dbus"
	network_wifi "github.com/dogeorg/accesspoints/pkg/system/network/wifi"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/sirupsen/logrus"
)

const networkManagerUnit = "NetworkManager.service"

// Prober answers questions about the host the scan runs on. Every probe is a
// field so tests can swap it out.
type Prober struct {
	LookPath   func(file string) (string, error)
	UnitActive func(ctx context.Context, unit string) (bool, error)
	HostInfo   func(ctx context.Context) (*host.InfoStat, error)
	Interfaces func() ([]Interface, error)
	Geteuid    func() int

	Log logrus.FieldLogger
}

func NewProber(log logrus.FieldLogger) *Prober {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Prober{
		LookPath:   exec.LookPath,
		UnitActive: systemdUnitActive,
		HostInfo:   host.InfoWithContext,
		Interfaces: ListInterfaces,
		Geteuid:    os.Geteuid,
		Log:        log,
	}
}

func systemdUnitActive(ctx context.Context, unit string) (bool, error) {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	units, err := conn.ListUnitsByNamesContext(ctx, []string{unit})
	if err != nil {
		return false, err
	}
	for _, u := range units {
		if u.Name == unit {
			return u.ActiveState == "active", nil
		}
	}
	return false, nil
}

// HostOS returns the operating system name, "linux", "darwin", "windows"...
func (p *Prober) HostOS(ctx context.Context) string {
	info, err := p.HostInfo(ctx)
	if err != nil || info == nil || info.OS == "" {
		if err != nil {
			p.Log.WithError(err).Debug("host info unavailable, using runtime.GOOS")
		}
		return runtime.GOOS
	}
	return info.OS
}

func (p *Prober) Hostname(ctx context.Context) string {
	info, err := p.HostInfo(ctx)
	if err == nil && info != nil && info.Hostname != "" {
		return info.Hostname
	}
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}

// NetworkManagerAvailable reports whether nmcli can be used. nmcli has to be
// on PATH; when systemd can be asked, NetworkManager must also be running.
func (p *Prober) NetworkManagerAvailable(ctx context.Context) bool {
	if _, err := p.LookPath("nmcli"); err != nil {
		return false
	}

	active, err := p.UnitActive(ctx, networkManagerUnit)
	if err != nil {
		p.Log.WithError(err).Debug("could not query systemd, trusting nmcli on PATH")
		return true
	}
	return active
}

func (p *Prober) IsRoot() bool {
	return p.Geteuid() == 0
}

// Detect picks the scan tool for this host.
func (p *Prober) Detect(ctx context.Context) network_wifi.Variant {
	osName := p.HostOS(ctx)
	nm := false
	if network_wifi.SelectVariant(osName, false) == network_wifi.VariantIWList {
		nm = p.NetworkManagerAvailable(ctx)
	}
	variant := network_wifi.SelectVariant(osName, nm)
	p.Log.WithFields(logrus.Fields{"os": osName, "variant": variant.String()}).Debug("detected scan tool")
	return variant
}
