package status

import (
	"context"
	"fmt"

	"github.com/brutella/dnssd"
)

// Advertiser publishes the beacon's status endpoint over mDNS/DNS-SD so a
// LAN client can discover it without a configured address.
type Advertiser struct {
	responder dnssd.Responder
	cancel    context.CancelFunc
}

// Advertise registers a _pico-aprs._tcp service named host at port and
// starts the responder in the background.
func Advertise(ctx context.Context, host string, port int) (*Advertiser, error) {
	cfg := dnssd.Config{
		Name: host,
		Type: "_pico-aprs._tcp",
		Port: port,
	}
	service, err := dnssd.NewService(cfg)
	if err != nil {
		return nil, fmt.Errorf("status: build dnssd service: %w", err)
	}

	responder, err := dnssd.NewResponder()
	if err != nil {
		return nil, fmt.Errorf("status: build dnssd responder: %w", err)
	}
	if _, err := responder.Add(service); err != nil {
		return nil, fmt.Errorf("status: register dnssd service: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	go func() {
		_ = responder.Respond(runCtx)
	}()

	return &Advertiser{responder: responder, cancel: cancel}, nil
}

// Close stops the responder.
func (a *Advertiser) Close() {
	a.cancel()
}
