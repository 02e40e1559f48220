//go:build !(js && wasm)

package origin

import "errors"

// standaloneFrame is the non-browser stand-in: the mini-app is its own
// top-level context. It lets host-side builds and tests compile.
type standaloneFrame struct{}

// NewBrowserFrame returns a Frame for non-js builds. It always reports a
// non-embedded context.
func NewBrowserFrame() Frame {
	return standaloneFrame{}
}

func (standaloneFrame) SelfOrigin() string     { return "" }
func (standaloneFrame) IsTop() bool            { return true }
func (standaloneFrame) ReferrerOrigin() string { return "" }

func (standaloneFrame) TopOrigin() (string, error) {
	return "", errors.New("no browser context")
}
