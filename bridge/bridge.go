// Package bridge implements the call correlation engine between a
// mini-app and its embedding wallet host. It turns the one-way,
// unordered message channel into a call/return interface: every call is
// tagged with a unique identifier, tracked while in flight, matched to
// the inbound envelope that answers it, and guarded by a deadline.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	sdkerrors "github.com/BerlinhouseLabs/frontier-sdk/errors"
	"github.com/BerlinhouseLabs/frontier-sdk/origin"
	"github.com/BerlinhouseLabs/frontier-sdk/transport"
	"github.com/BerlinhouseLabs/frontier-sdk/wire"
)

// DefaultTimeout is the deadline applied to every call.
const DefaultTimeout = 30 * time.Second

// Caller is the facade-facing surface of the bridge.
type Caller interface {
	Call(ctx context.Context, method string, payload any) (json.RawMessage, error)
}

// Notifier sends fire-and-forget envelopes to the host.
type Notifier interface {
	Notify(method string, payload any) error
}

// Bridge correlates outbound calls with inbound responses. A pending
// call reaches exactly one terminal outcome — response, remote error,
// timeout, context cancellation, or shutdown — and later envelopes
// bearing its identifier are inert.
type Bridge struct {
	transport transport.Transport
	verifier  *origin.Verifier
	timeout   time.Duration
	broadcast bool
	metrics   *metrics

	seq atomic.Uint64

	mu        sync.Mutex
	pending   map[string]*pendingCall
	closed    bool
	cancelSub func()
}

type pendingCall struct {
	method string
	timer  *time.Timer
	done   chan outcome // buffered; completion never blocks dispatch
}

type outcome struct {
	result json.RawMessage
	err    error
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(b *Bridge) {
		b.timeout = d
	}
}

// WithRegisterer registers the bridge's counters with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(b *Bridge) {
		b.metrics = newMetrics(reg)
	}
}

// WithInsecureBroadcast sends outbound envelopes without restricting the
// target to the verified ancestor origin, and allows sending before any
// trusted ancestor is established.
//
// Deprecated: broadcast exposes call payloads to whatever context
// occupies the ancestor slot. It exists only for compatibility with
// hosts that predate origin-restricted sends and will be removed.
func WithInsecureBroadcast() Option {
	return func(b *Bridge) {
		b.broadcast = true
	}
}

// New creates a Bridge and subscribes it to the transport. Construction
// has no host-visible side effect; call AnnounceReady separately once
// the mini-app is ready to receive calls.
func New(t transport.Transport, v *origin.Verifier, opts ...Option) *Bridge {
	b := &Bridge{
		transport: t,
		verifier:  v,
		timeout:   DefaultTimeout,
		pending:   make(map[string]*pendingCall),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.metrics == nil {
		b.metrics = newMetrics(nil)
	}
	b.cancelSub = t.Subscribe(b.HandleInbound)
	return b
}

// Call sends method with payload to the host and blocks until the call
// settles. payload may be nil for methods that take none; the returned
// raw JSON is the host's result for response-kind envelopes.
func (b *Bridge) Call(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	target, err := b.sendTarget()
	if err != nil {
		return nil, err
	}

	raw, err := marshalPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	id := b.nextID()
	pc := &pendingCall{method: method, done: make(chan outcome, 1)}
	timeout := b.timeout

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, sdkerrors.ErrClosed
	}
	// Armed under the lock so the deadline cannot observe the call
	// before it is tracked.
	pc.timer = time.AfterFunc(timeout, func() {
		b.settle(id, outcome{err: &sdkerrors.TimeoutError{Method: method, Duration: timeout}})
		b.metrics.timeouts.Inc()
	})
	b.pending[id] = pc
	b.mu.Unlock()

	if err := b.transport.Send(target, wire.Outbound{Method: method, CallID: id, Payload: raw}); err != nil {
		b.forget(id)
		return nil, &sdkerrors.SendError{Method: method, Err: err}
	}
	b.metrics.calls.Inc()

	select {
	case out := <-pc.done:
		return out.result, out.err
	case <-ctx.Done():
		b.forget(id)
		return nil, ctx.Err()
	}
}

// Notify sends a fire-and-forget envelope. No call identifier is
// allocated and no response is expected.
func (b *Bridge) Notify(method string, payload any) error {
	target, err := b.sendTarget()
	if err != nil {
		return err
	}
	raw, err := marshalPayload(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}
	if err := b.transport.Send(target, wire.Outbound{Method: method, Payload: raw}); err != nil {
		return &sdkerrors.SendError{Method: method, Err: err}
	}
	return nil
}

// AnnounceReady tells the host the mini-app finished booting. Explicit
// rather than a constructor side effect so trust verification can be
// exercised without anything host-visible happening.
func (b *Bridge) AnnounceReady() error {
	target, err := b.sendTarget()
	if err != nil {
		return err
	}
	if err := b.transport.Send(target, wire.Ready()); err != nil {
		return &sdkerrors.SendError{Method: wire.MethodReady, Err: err}
	}
	return nil
}

// HandleInbound processes one envelope from the transport. Envelopes
// whose sender is not the verified trusted ancestor are dropped, as are
// envelopes with an unknown or already-settled call identifier; both
// occur legitimately (duplicate delivery, a response to a timed-out
// call, cross-talk from an unrelated frame) and are not errors.
func (b *Bridge) HandleInbound(msg wire.Inbound, sender string) {
	if !b.trustedSender(sender) || !msg.Kind.Valid() {
		b.metrics.dropped.Inc()
		return
	}

	b.mu.Lock()
	pc, ok := b.pending[msg.CallID]
	if ok {
		delete(b.pending, msg.CallID)
	}
	b.mu.Unlock()
	if !ok {
		return
	}

	pc.timer.Stop()
	switch msg.Kind {
	case wire.KindResponse:
		pc.done <- outcome{result: msg.Result}
	case wire.KindError:
		b.metrics.remoteErrors.Inc()
		pc.done <- outcome{err: &sdkerrors.RemoteError{Method: pc.method, Message: msg.Error}}
	}
}

// Shutdown cancels the transport subscription and fails every pending
// call with ErrClosed so that no caller is left blocked forever.
func (b *Bridge) Shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	pend := b.pending
	b.pending = make(map[string]*pendingCall)
	cancel := b.cancelSub
	b.cancelSub = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	for _, pc := range pend {
		if pc.timer != nil {
			pc.timer.Stop()
		}
		pc.done <- outcome{err: sdkerrors.ErrClosed}
	}
}

// sendTarget resolves the origin outbound envelopes are restricted to.
// Without a verified trusted ancestor the send is refused; the
// deprecated broadcast mode skips the check entirely.
func (b *Bridge) sendTarget() (string, error) {
	if b.broadcast {
		return transport.TargetAny, nil
	}
	if !b.verifier.IsEmbedded() {
		return "", sdkerrors.ErrNotEmbedded
	}
	if !b.verifier.IsTrustedAncestor() {
		return "", sdkerrors.ErrNoTrustedAncestor
	}
	target, _ := b.verifier.AncestorOrigin()
	return target, nil
}

func (b *Bridge) trustedSender(sender string) bool {
	if !b.verifier.IsTrustedAncestor() {
		return false
	}
	ancestor, ok := b.verifier.AncestorOrigin()
	if !ok {
		return false
	}
	n, ok := origin.Normalize(sender)
	return ok && n == ancestor
}

// settle completes a pending call with out. First terminal outcome wins;
// settling an unknown or already-settled identifier is a no-op.
func (b *Bridge) settle(id string, out outcome) {
	b.mu.Lock()
	pc, ok := b.pending[id]
	if ok {
		delete(b.pending, id)
	}
	b.mu.Unlock()
	if !ok {
		return
	}
	if pc.timer != nil {
		pc.timer.Stop()
	}
	pc.done <- out
}

// forget removes a pending call without completing it. Used when the
// caller already has its outcome (send failure, context cancellation).
func (b *Bridge) forget(id string) {
	b.mu.Lock()
	pc, ok := b.pending[id]
	if ok {
		delete(b.pending, id)
	}
	b.mu.Unlock()
	if ok && pc.timer != nil {
		pc.timer.Stop()
	}
}

func marshalPayload(payload any) (json.RawMessage, error) {
	if payload == nil {
		return nil, nil
	}
	if raw, ok := payload.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(payload)
}
