package transport

import (
	"sync"

	"github.com/BerlinhouseLabs/frontier-sdk/wire"
)

// Pair links an in-process mini-app endpoint with a host endpoint. It is
// used by tests, the host test harness, and local development where no
// browser channel exists. Both ends are safe for concurrent use.
func Pair(hostOrigin string) (*Endpoint, *HostEndpoint) {
	host := &HostEndpoint{origin: hostOrigin}
	app := &Endpoint{host: host}
	host.app = app
	return app, host
}

// Endpoint is the mini-app side of an in-process pair. It implements
// Transport.
type Endpoint struct {
	host *HostEndpoint

	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

// Send forwards the envelope to the linked host endpoint.
func (e *Endpoint) Send(target string, msg wire.Outbound) error {
	e.host.dispatchOutbound(target, msg)
	return nil
}

// Subscribe registers h for inbound envelopes delivered by the host end.
func (e *Endpoint) Subscribe(h Handler) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[int]Handler)
	}
	id := e.nextID
	e.nextID++
	e.handlers[id] = h
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers, id)
	}
}

func (e *Endpoint) dispatchInbound(msg wire.Inbound, sender string) {
	e.mu.Lock()
	hs := make([]Handler, 0, len(e.handlers))
	for _, h := range e.handlers {
		hs = append(hs, h)
	}
	e.mu.Unlock()
	for _, h := range hs {
		h(msg, sender)
	}
}

// OutboundHandler receives envelopes the mini-app sent, together with
// the target origin it addressed.
type OutboundHandler func(target string, msg wire.Outbound)

// HostEndpoint is the host side of an in-process pair.
type HostEndpoint struct {
	origin string
	app    *Endpoint

	mu       sync.Mutex
	nextID   int
	handlers map[int]OutboundHandler
}

// Origin returns the origin this endpoint delivers messages as.
func (h *HostEndpoint) Origin() string {
	return h.origin
}

// HandleOutbound registers f for envelopes sent by the mini-app.
func (h *HostEndpoint) HandleOutbound(f OutboundHandler) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.handlers == nil {
		h.handlers = make(map[int]OutboundHandler)
	}
	id := h.nextID
	h.nextID++
	h.handlers[id] = f
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.handlers, id)
	}
}

// Deliver sends an inbound envelope to the mini-app as this endpoint's
// own origin.
func (h *HostEndpoint) Deliver(msg wire.Inbound) {
	h.DeliverFrom(h.origin, msg)
}

// DeliverFrom sends an inbound envelope with an arbitrary sender origin.
// Tests use it to exercise untrusted-sender dropping.
func (h *HostEndpoint) DeliverFrom(origin string, msg wire.Inbound) {
	h.app.dispatchInbound(msg, origin)
}

func (h *HostEndpoint) dispatchOutbound(target string, msg wire.Outbound) {
	h.mu.Lock()
	fs := make([]OutboundHandler, 0, len(h.handlers))
	for _, f := range h.handlers {
		fs = append(fs, f)
	}
	h.mu.Unlock()
	for _, f := range fs {
		f(target, msg)
	}
}
