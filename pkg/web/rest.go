package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	accesspoints "github.com/dogeorg/accesspoints/pkg"
	"github.com/dogeorg/accesspoints/pkg/system/network"
	network_wifi "github.com/dogeorg/accesspoints/pkg/system/network/wifi"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/netutil"
)

// ScanService is what the API needs from the network layer.
type ScanService interface {
	Scan(ctx context.Context) (network_wifi.ScanResult, error)
	Interfaces() ([]network.Interface, error)
}

type HostInfo struct {
	Hostname string
	OS       string
}

type API struct {
	*api
}

func RESTAPI(config accesspoints.ServeConfig, scanner ScanService, host HostInfo, log logrus.FieldLogger) API {
	if log == nil {
		log = logrus.StandardLogger()
	}

	a := &api{
		mux:     http.NewServeMux(),
		config:  config,
		scanner: scanner,
		host:    host,
		log:     log.WithField("component", "api"),
	}

	routes := map[string]http.HandlerFunc{
		"GET /access-points":       a.getAccessPoints,
		"GET /access-points/count": a.getAccessPointCount,
		"GET /interfaces":          a.getInterfaces,
		"GET /version":             a.getVersion,
	}

	for p, h := range routes {
		a.mux.HandleFunc(p, h)
	}
	a.log.Debugf("Loaded %d API routes", len(routes))

	return API{a}
}

type api struct {
	mux     *http.ServeMux
	config  accesspoints.ServeConfig
	scanner ScanService
	host    HostInfo
	log     logrus.FieldLogger

	// one scan tool process at a time
	scanMu sync.Mutex
}

func (t API) Handler() http.Handler {
	return cors.AllowAll().Handler(t.mux)
}

func (t API) Addr() string {
	return net.JoinHostPort(t.config.Bind, fmt.Sprint(t.config.Port))
}

// Run serves the API until ctx is cancelled.
func (t API) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", t.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", t.Addr(), err)
	}
	return t.Serve(ctx, l)
}

func (t API) Serve(ctx context.Context, l net.Listener) error {
	if t.config.MaxConns > 0 {
		l = netutil.LimitListener(l, t.config.MaxConns)
	}

	srv := &http.Server{Handler: t.Handler(), ReadHeaderTimeout: 10 * time.Second}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.Serve(l)
	}()
	t.log.WithField("addr", l.Addr().String()).Info("serving access point API")

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
