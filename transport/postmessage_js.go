//go:build js && wasm

package transport

import (
	"fmt"
	"sync"
	"syscall/js"

	"github.com/BerlinhouseLabs/frontier-sdk/wire"
)

// PostMessage is the browser transport: outbound envelopes go to the
// parent window via postMessage, inbound envelopes arrive through the
// window "message" event. Envelopes that fail to decode are ignored;
// unrelated frames share the same event stream.
type PostMessage struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
	listener js.Func
	started  bool
}

// NewPostMessage creates the browser transport.
func NewPostMessage() (*PostMessage, error) {
	parent := js.Global().Get("parent")
	if parent.IsUndefined() || parent.IsNull() {
		return nil, fmt.Errorf("no parent context available")
	}
	return &PostMessage{}, nil
}

// Send posts the envelope to the parent window, restricted to target.
func (p *PostMessage) Send(target string, msg wire.Outbound) error {
	data, err := wire.EncodeOutbound(msg)
	if err != nil {
		return err
	}
	js.Global().Get("parent").Call("postMessage", string(data), target)
	return nil
}

// Subscribe registers h and lazily installs the window message listener.
func (p *PostMessage) Subscribe(h Handler) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handlers == nil {
		p.handlers = make(map[int]Handler)
	}
	if !p.started {
		p.listener = js.FuncOf(p.onMessage)
		js.Global().Call("addEventListener", "message", p.listener)
		p.started = true
	}
	id := p.nextID
	p.nextID++
	p.handlers[id] = h
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.handlers, id)
	}
}

// Close removes the window message listener.
func (p *PostMessage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		js.Global().Call("removeEventListener", "message", p.listener)
		p.listener.Release()
		p.started = false
	}
	p.handlers = nil
}

func (p *PostMessage) onMessage(_ js.Value, args []js.Value) any {
	if len(args) == 0 {
		return nil
	}
	event := args[0]
	sender := event.Get("origin").String()

	data := event.Get("data")
	var raw string
	switch data.Type() {
	case js.TypeString:
		raw = data.String()
	case js.TypeObject:
		raw = js.Global().Get("JSON").Call("stringify", data).String()
	default:
		return nil
	}

	msg, err := wire.DecodeInbound([]byte(raw))
	if err != nil {
		return nil
	}

	p.mu.Lock()
	hs := make([]Handler, 0, len(p.handlers))
	for _, h := range p.handlers {
		hs = append(hs, h)
	}
	p.mu.Unlock()
	for _, h := range hs {
		h(msg, sender)
	}
	return nil
}
