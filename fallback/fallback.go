// Package fallback renders the instructional screen shown when a
// mini-app is opened outside a trusted wallet host. It performs no
// correlation logic; it only consumes the origin verifier.
package fallback

import (
	"html/template"
	"strings"

	"github.com/BerlinhouseLabs/frontier-sdk/origin"
)

// DefaultWalletURL is where users are pointed when the app is opened
// standalone.
const DefaultWalletURL = "https://wallet.frontiertower.io"

// Renderer decides whether to replace the mini-app UI with an
// instructional message, and produces that message.
type Renderer struct {
	verifier  *origin.Verifier
	appName   string
	walletURL string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAppName sets the mini-app name shown in the message.
func WithAppName(name string) Option {
	return func(r *Renderer) {
		r.appName = name
	}
}

// WithWalletURL overrides the wallet URL shown in the message.
func WithWalletURL(url string) Option {
	return func(r *Renderer) {
		r.walletURL = url
	}
}

// New creates a Renderer.
func New(v *origin.Verifier, opts ...Option) *Renderer {
	r := &Renderer{
		verifier:  v,
		appName:   "This app",
		walletURL: DefaultWalletURL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ShouldRender reports whether the fallback screen should replace the
// app UI: the app is not embedded, or its embedder is not trusted.
func (r *Renderer) ShouldRender() bool {
	return !r.verifier.IsEmbedded() || !r.verifier.IsTrustedAncestor()
}

// Message returns the plain-text instructional message.
func (r *Renderer) Message() string {
	var b strings.Builder
	b.WriteString(r.appName)
	b.WriteString(" runs inside the Frontier Tower wallet.\n")
	b.WriteString("Open ")
	b.WriteString(r.walletURL)
	b.WriteString(" and launch it from there.")
	return b.String()
}

var page = template.Must(template.New("fallback").Parse(`<div class="frontier-fallback">
  <h1>{{.AppName}} runs inside the Frontier Tower wallet</h1>
  <p>Open <a href="{{.WalletURL}}">{{.WalletURL}}</a> and launch it from there.</p>
</div>`))

// HTML returns the instructional message as a minimal HTML fragment,
// with the app name and URL escaped.
func (r *Renderer) HTML() (string, error) {
	var b strings.Builder
	err := page.Execute(&b, struct {
		AppName   string
		WalletURL string
	}{r.appName, r.walletURL})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
