package origin

import (
	"net/url"
	"strings"
)

// Verifier checks the embedding context against a fixed allow-list of
// wallet host origins. The allow-list is copied at construction and
// never mutated afterwards.
type Verifier struct {
	frame   Frame
	allowed map[string]struct{}
}

// NewVerifier creates a Verifier for the given frame and allowed origins.
// Origins are matched by exact scheme://host:port comparison after
// normalization.
func NewVerifier(frame Frame, allowedOrigins []string) *Verifier {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if n, ok := Normalize(o); ok {
			allowed[n] = struct{}{}
		}
	}
	return &Verifier{frame: frame, allowed: allowed}
}

// IsEmbedded reports whether the mini-app has a distinct ancestor
// rendering context, i.e. it is not its own top-level context.
func (v *Verifier) IsEmbedded() bool {
	return !v.frame.IsTop()
}

// AncestorOrigin recovers the embedding ancestor's origin, best effort.
// The referrer signal is preferred; the direct top-origin read is only a
// fallback because it fails for cross-origin ancestors (the common case
// outside local development).
func (v *Verifier) AncestorOrigin() (string, bool) {
	if !v.IsEmbedded() {
		return "", false
	}
	if ref := v.frame.ReferrerOrigin(); ref != "" {
		if n, ok := Normalize(ref); ok {
			return n, true
		}
	}
	if top, err := v.frame.TopOrigin(); err == nil && top != "" {
		if n, ok := Normalize(top); ok {
			return n, true
		}
	}
	return "", false
}

// IsTrustedAncestor reports whether the ancestor's origin is present in
// the allow-list. When neither origin signal yields a value the context
// is treated as untrusted.
func (v *Verifier) IsTrustedAncestor() bool {
	o, ok := v.AncestorOrigin()
	if !ok {
		return false
	}
	_, ok = v.allowed[o]
	return ok
}

// Normalize reduces a full URL or origin string to its canonical
// scheme://host[:port] form. It reports false for unparseable input.
func Normalize(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), true
}
