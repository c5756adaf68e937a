package system

import (
	"fmt"
	"net/http"
	"time"

	network_wifi "github.com/dogeorg/accesspoints/pkg/system/network/wifi"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ScanReport is what gets sent to a collector with --submit, and what the
// HTTP API returns for a scan.
type ScanReport struct {
	ID           string                     `json:"id"`
	Hostname     string                     `json:"hostname"`
	OS           string                     `json:"os"`
	Variant      string                     `json:"variant"`
	Device       string                     `json:"device,omitempty"`
	ScannedAt    time.Time                  `json:"scannedAt"`
	AccessPoints []network_wifi.AccessPoint `json:"accessPoints"`
}

func NewScanReport(hostname, os string, result network_wifi.ScanResult) ScanReport {
	aps := result.AccessPoints
	if aps == nil {
		aps = []network_wifi.AccessPoint{}
	}
	return ScanReport{
		ID:           uuid.NewString(),
		Hostname:     hostname,
		OS:           os,
		Variant:      result.Variant.String(),
		Device:       result.Device,
		ScannedAt:    time.Now().UTC(),
		AccessPoints: aps,
	}
}

func SubmitScanReport(url string, report ScanReport) error {
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(30 * time.Second)
	client.SetContentLength(true)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(report).
		Post(url)

	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("failed to submit scan report: %s: %s", resp.Status(), resp.String())
	}

	return nil
}
