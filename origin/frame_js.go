//go:build js && wasm

package origin

import (
	"fmt"
	"syscall/js"
)

// browserFrame reads embedding signals from the browser window object.
type browserFrame struct{}

// NewBrowserFrame returns a Frame backed by the real browser context.
func NewBrowserFrame() Frame {
	return browserFrame{}
}

func (browserFrame) SelfOrigin() string {
	return js.Global().Get("location").Get("origin").String()
}

func (browserFrame) IsTop() bool {
	top := js.Global().Get("top")
	if top.IsUndefined() || top.IsNull() {
		return true
	}
	return top.Equal(js.Global())
}

func (browserFrame) ReferrerOrigin() string {
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return ""
	}
	ref := doc.Get("referrer").String()
	if ref == "" {
		return ""
	}
	n, ok := Normalize(ref)
	if !ok {
		return ""
	}
	return n
}

func (browserFrame) TopOrigin() (origin string, err error) {
	// Reading a cross-origin ancestor's location throws; syscall/js
	// surfaces that as a panic.
	defer func() {
		if r := recover(); r != nil {
			origin = ""
			err = fmt.Errorf("cross-origin ancestor: %v", r)
		}
	}()
	top := js.Global().Get("top")
	if top.IsUndefined() || top.IsNull() {
		return "", fmt.Errorf("no top context")
	}
	return top.Get("location").Get("origin").String(), nil
}
