//go:build !(js && wasm)

package transport

import (
	"errors"

	"github.com/BerlinhouseLabs/frontier-sdk/wire"
)

// PostMessage is only available in js/wasm builds. This stub keeps
// host-side builds and tests compiling.
type PostMessage struct{}

// NewPostMessage reports that the browser transport is unavailable.
func NewPostMessage() (*PostMessage, error) {
	return nil, errors.New("postmessage transport requires a js/wasm build")
}

// Send always fails on non-js builds.
func (p *PostMessage) Send(string, wire.Outbound) error {
	return errors.New("postmessage transport requires a js/wasm build")
}

// Subscribe is a no-op on non-js builds.
func (p *PostMessage) Subscribe(Handler) (cancel func()) {
	return func() {}
}
