// Package transport carries wire envelopes between the mini-app and the
// embedding host. The channel is one-way per direction, unordered, and
// multiplexed; correlation is the bridge's job, not the transport's.
package transport

import "github.com/BerlinhouseLabs/frontier-sdk/wire"

// Handler receives one inbound envelope together with the
// transport-level origin of its sender. The sender origin is what the
// bridge checks against the verified ancestor; handlers must tolerate
// duplicate and out-of-order delivery.
type Handler func(msg wire.Inbound, sender string)

// Transport is the mini-app's endpoint of the cross-context channel.
type Transport interface {
	// Send delivers an outbound envelope to the given target origin.
	Send(target string, msg wire.Outbound) error

	// Subscribe registers a handler for inbound envelopes and returns a
	// function that cancels the subscription.
	Subscribe(h Handler) (cancel func())
}

// TargetAny requests an unrestricted send. Only the deprecated broadcast
// mode uses it; see bridge.WithInsecureBroadcast.
const TargetAny = "*"
