// Package origin decides whether the current execution context is
// embedded in a wallet host and whether that host's origin is trusted.
package origin

// Frame abstracts the rendering context the mini-app executes in. The
// browser implementation lives behind a js/wasm build tag; tests supply
// their own.
type Frame interface {
	// SelfOrigin returns the origin of the mini-app's own context.
	SelfOrigin() string

	// IsTop reports whether this context is its own top-most ancestor.
	// Embedding is defined against the top-most ancestor, not the
	// immediate parent, so nesting one frame deeper than expected is
	// still classified as embedded.
	IsTop() bool

	// ReferrerOrigin returns the origin derived from the navigation
	// referrer, or "" when there is none.
	ReferrerOrigin() string

	// TopOrigin reads the top-most ancestor's location origin directly.
	// The read only succeeds when ancestor and mini-app are same-origin;
	// a cross-origin failure is reported as an error, not as distrust.
	TopOrigin() (string, error)
}
