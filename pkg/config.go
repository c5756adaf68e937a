package accesspoints

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

type Config struct {
	Format string
	Count  bool
	Submit string
	Scan   ScanConfig
	Log    LogConfig
	Serve  ServeConfig
}

type ScanConfig struct {
	Device  string
	Tool    string // force a scan tool instead of detecting one
	Timeout time.Duration
	Sudo    bool
}

type LogConfig struct {
	Level   string
	Format  string
	File    string
	Journal bool
}

type ServeConfig struct {
	Bind     string
	Port     int
	MaxConns int
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("device", "")
	v.SetDefault("tool", "")
	v.SetDefault("format", FormatJSON)
	v.SetDefault("count", false)
	v.SetDefault("submit", "")

	v.SetDefault("scan.timeout", 30*time.Second)
	v.SetDefault("scan.sudo", true)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.journal", false)

	v.SetDefault("serve.bind", "127.0.0.1")
	v.SetDefault("serve.port", 8080)
	v.SetDefault("serve.max_conns", 16)
}

func ConfigFromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Format: strings.ToLower(v.GetString("format")),
		Count:  v.GetBool("count"),
		Submit: v.GetString("submit"),
		Scan: ScanConfig{
			Device:  v.GetString("device"),
			Tool:    v.GetString("tool"),
			Timeout: v.GetDuration("scan.timeout"),
			Sudo:    v.GetBool("scan.sudo"),
		},
		Log: LogConfig{
			Level:   v.GetString("log.level"),
			Format:  v.GetString("log.format"),
			File:    v.GetString("log.file"),
			Journal: v.GetBool("log.journal"),
		},
		Serve: ServeConfig{
			Bind:     v.GetString("serve.bind"),
			Port:     v.GetInt("serve.port"),
			MaxConns: v.GetInt("serve.max_conns"),
		},
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error

	if c.Format != FormatJSON && c.Format != FormatTable {
		errs = append(errs, fmt.Errorf("unknown output format %q (want %s or %s)", c.Format, FormatJSON, FormatTable))
	}
	if c.Scan.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("scan timeout must be positive, got %s", c.Scan.Timeout))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Serve.Port <= 0 || c.Serve.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid serve port %d", c.Serve.Port))
	}
	if c.Serve.MaxConns <= 0 {
		errs = append(errs, fmt.Errorf("serve max_conns must be positive, got %d", c.Serve.MaxConns))
	}

	return errors.Join(errs...)
}
