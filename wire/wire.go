// Package wire defines the JSON envelope types exchanged between a
// mini-app and the wallet host over the cross-context message channel.
// These types are the channel contract and must remain stable and
// backward compatible.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Kind classifies an inbound envelope from the host.
type Kind string

const (
	// KindResponse indicates the host fulfilled the call; Result carries the value.
	KindResponse Kind = "response"

	// KindError indicates the host rejected the call; Error carries the reason.
	KindError Kind = "error"
)

// Valid reports whether k is a known envelope kind.
func (k Kind) Valid() bool {
	return k == KindResponse || k == KindError
}

// Reserved method names for host notifications. Notifications carry no
// call identifier and expect no response.
const (
	// MethodReady announces that the mini-app finished booting.
	MethodReady = "app:ready"

	// MethodLog forwards a structured log record to the host.
	MethodLog = "app:log"
)

// Outbound is an envelope sent from the mini-app to the embedding host.
// CallID is empty for notifications and required for calls.
type Outbound struct {
	Method  string          `json:"method" validate:"required"`
	CallID  string          `json:"callId,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Inbound is an envelope delivered by the host in answer to a call.
type Inbound struct {
	Kind   Kind            `json:"kind" validate:"required,oneof=response error"`
	CallID string          `json:"callId" validate:"required"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// validate is a package-level singleton; constructing a validator per
// call is expensive.
var validate = validator.New()

// Ready returns the readiness announcement envelope. The payload is an
// explicit JSON null, which the host relies on.
func Ready() Outbound {
	return Outbound{Method: MethodReady, Payload: json.RawMessage("null")}
}

// EncodeOutbound validates and marshals an outbound envelope.
func EncodeOutbound(msg Outbound) ([]byte, error) {
	if err := validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("invalid outbound envelope: %w", err)
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal outbound envelope: %w", err)
	}
	return data, nil
}

// DecodeInbound unmarshals and validates an inbound envelope.
func DecodeInbound(data []byte) (Inbound, error) {
	var msg Inbound
	if err := json.Unmarshal(data, &msg); err != nil {
		return Inbound{}, fmt.Errorf("failed to unmarshal inbound envelope: %w", err)
	}
	if err := validate.Struct(msg); err != nil {
		return Inbound{}, fmt.Errorf("invalid inbound envelope: %w", err)
	}
	return msg, nil
}
