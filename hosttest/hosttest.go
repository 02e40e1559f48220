// Package hosttest provides a fake wallet host for mini-app tests: a
// scriptable responder behind an in-process transport pair, plus a
// configurable origin.Frame.
package hosttest

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/BerlinhouseLabs/frontier-sdk/transport"
	"github.com/BerlinhouseLabs/frontier-sdk/wire"
)

// Responder produces the host's answer to one call. Returning an error
// makes the host answer with an error-kind envelope carrying its text.
type Responder func(payload json.RawMessage) (json.RawMessage, error)

// Host is a scriptable fake wallet host. Methods without a responder
// leave their calls pending, which is what timeout tests want.
type Host struct {
	endpoint *transport.HostEndpoint

	mu            sync.Mutex
	responders    map[string]Responder
	calls         []wire.Outbound
	notifications []wire.Outbound
	targets       []string
}

// New creates a fake host answering from hostOrigin and returns it with
// the mini-app transport wired to it.
func New(hostOrigin string) (*Host, *transport.Endpoint) {
	app, end := transport.Pair(hostOrigin)
	h := &Host{
		endpoint:   end,
		responders: make(map[string]Responder),
	}
	end.HandleOutbound(h.onOutbound)
	return h, app
}

// Respond scripts a responder for method.
func (h *Host) Respond(method string, r Responder) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responders[method] = r
}

// RespondValue scripts a fixed successful result for method.
func (h *Host) RespondValue(method string, v any) {
	h.Respond(method, func(json.RawMessage) (json.RawMessage, error) {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return raw, nil
	})
}

// FailWith scripts an error-kind answer for method.
func (h *Host) FailWith(method, message string) {
	h.Respond(method, func(json.RawMessage) (json.RawMessage, error) {
		return nil, errText(message)
	})
}

// Deliver injects an inbound envelope as the host's own origin.
func (h *Host) Deliver(msg wire.Inbound) {
	h.endpoint.Deliver(msg)
}

// DeliverFrom injects an inbound envelope with a spoofed sender origin.
func (h *Host) DeliverFrom(origin string, msg wire.Inbound) {
	h.endpoint.DeliverFrom(origin, msg)
}

// Calls returns every call envelope received so far.
func (h *Host) Calls() []wire.Outbound {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]wire.Outbound(nil), h.calls...)
}

// Notifications returns every notification envelope received so far.
func (h *Host) Notifications() []wire.Outbound {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]wire.Outbound(nil), h.notifications...)
}

// ReadyAnnounced reports whether an app:ready notification arrived.
func (h *Host) ReadyAnnounced() bool {
	for _, n := range h.Notifications() {
		if n.Method == wire.MethodReady {
			return true
		}
	}
	return false
}

// LastCallID returns the identifier of the most recent call, or "".
func (h *Host) LastCallID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.calls) == 0 {
		return ""
	}
	return h.calls[len(h.calls)-1].CallID
}

// Targets returns the target origin of every envelope received so far,
// in arrival order.
func (h *Host) Targets() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.targets...)
}

func (h *Host) onOutbound(target string, msg wire.Outbound) {
	h.mu.Lock()
	h.targets = append(h.targets, target)
	if msg.CallID == "" {
		h.notifications = append(h.notifications, msg)
		h.mu.Unlock()
		return
	}
	h.calls = append(h.calls, msg)
	r := h.responders[msg.Method]
	h.mu.Unlock()

	if r == nil {
		return
	}
	result, err := r(msg.Payload)
	if err != nil {
		h.endpoint.Deliver(wire.Inbound{Kind: wire.KindError, CallID: msg.CallID, Error: err.Error()})
		return
	}
	h.endpoint.Deliver(wire.Inbound{Kind: wire.KindResponse, CallID: msg.CallID, Result: result})
}

type errText string

func (e errText) Error() string { return string(e) }

// RequireCallCount fails the test unless exactly n calls were received.
func RequireCallCount(t *testing.T, h *Host, n int) {
	t.Helper()
	if got := len(h.Calls()); got != n {
		t.Fatalf("expected %d calls, got %d", n, got)
	}
}
