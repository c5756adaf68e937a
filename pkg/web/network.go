package web

import (
	"errors"
	"net/http"

	"github.com/dogeorg/accesspoints/pkg/system"
	network_wifi "github.com/dogeorg/accesspoints/pkg/system/network/wifi"
	"github.com/dogeorg/accesspoints/pkg/version"
)

type accessPointsResponse struct {
	Success bool `json:"success"`
	system.ScanReport
}

func (t *api) scan(w http.ResponseWriter, r *http.Request) (network_wifi.ScanResult, bool) {
	t.scanMu.Lock()
	defer t.scanMu.Unlock()

	result, err := t.scanner.Scan(r.Context())
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, network_wifi.ErrUnsupportedPlatform) {
			code = http.StatusNotImplemented
		}
		t.log.WithError(err).Error("scan failed")
		t.sendErrorResponse(w, code, "Failed to scan for access points")
		return result, false
	}
	return result, true
}

func (t *api) getAccessPoints(w http.ResponseWriter, r *http.Request) {
	result, ok := t.scan(w, r)
	if !ok {
		return
	}

	report := system.NewScanReport(t.host.Hostname, t.host.OS, result)
	t.log.WithField("scan_id", report.ID).Debugf("found %d access points", len(report.AccessPoints))

	t.sendResponse(w, accessPointsResponse{Success: true, ScanReport: report})
}

func (t *api) getAccessPointCount(w http.ResponseWriter, r *http.Request) {
	result, ok := t.scan(w, r)
	if !ok {
		return
	}

	t.sendResponse(w, map[string]any{
		"success": true,
		"count":   len(result.AccessPoints),
	})
}

func (t *api) getInterfaces(w http.ResponseWriter, r *http.Request) {
	ifaces, err := t.scanner.Interfaces()
	if err != nil {
		t.log.WithError(err).Error("failed to list interfaces")
		t.sendErrorResponse(w, http.StatusInternalServerError, "Failed to list wireless interfaces")
		return
	}

	t.sendResponse(w, map[string]any{
		"success":    true,
		"interfaces": ifaces,
	})
}

func (t *api) getVersion(w http.ResponseWriter, r *http.Request) {
	t.sendResponse(w, version.GetRelease())
}
