package hosttest

import "errors"

// Frame is a configurable origin.Frame for tests and local development.
// The zero value is a standalone, non-embedded context.
type Frame struct {
	// Self is the mini-app's own origin.
	Self string

	// Embedded marks the context as having a distinct top-most ancestor.
	Embedded bool

	// Referrer is the referrer-derived origin, "" when absent.
	Referrer string

	// Top is the top context's origin; only readable when CrossOrigin
	// is false.
	Top string

	// CrossOrigin makes the direct top-origin read fail, as it does for
	// any cross-origin ancestor in a real browser.
	CrossOrigin bool
}

func (f *Frame) SelfOrigin() string     { return f.Self }
func (f *Frame) IsTop() bool            { return !f.Embedded }
func (f *Frame) ReferrerOrigin() string { return f.Referrer }

func (f *Frame) TopOrigin() (string, error) {
	if !f.Embedded {
		return f.Self, nil
	}
	if f.CrossOrigin {
		return "", errors.New("cross-origin ancestor")
	}
	return f.Top, nil
}
