package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerlinhouseLabs/frontier-sdk/fallback"
	"github.com/BerlinhouseLabs/frontier-sdk/hosttest"
	"github.com/BerlinhouseLabs/frontier-sdk/origin"
)

var allowed = []string{"https://wallet.frontiertower.io"}

func trustedVerifier() *origin.Verifier {
	return origin.NewVerifier(&hosttest.Frame{
		Self:     "https://miniapp.example",
		Embedded: true,
		Referrer: "https://wallet.frontiertower.io",
	}, allowed)
}

func TestShouldRenderStandalone(t *testing.T) {
	v := origin.NewVerifier(&hosttest.Frame{Self: "https://miniapp.example"}, allowed)
	r := fallback.New(v)
	assert.True(t, r.ShouldRender())
}

func TestShouldRenderUntrustedEmbedder(t *testing.T) {
	v := origin.NewVerifier(&hosttest.Frame{
		Self:     "https://miniapp.example",
		Embedded: true,
		Referrer: "https://evil.example",
	}, allowed)
	r := fallback.New(v)
	assert.True(t, r.ShouldRender())
}

func TestShouldNotRenderWhenTrusted(t *testing.T) {
	r := fallback.New(trustedVerifier())
	assert.False(t, r.ShouldRender())
}

func TestMessage(t *testing.T) {
	r := fallback.New(trustedVerifier(), fallback.WithAppName("Tower Tickets"))
	msg := r.Message()
	assert.Contains(t, msg, "Tower Tickets")
	assert.Contains(t, msg, fallback.DefaultWalletURL)
}

func TestHTMLEscapesAppName(t *testing.T) {
	r := fallback.New(trustedVerifier(), fallback.WithAppName("<script>alert(1)</script>"))
	html, err := r.HTML()
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestWithWalletURL(t *testing.T) {
	r := fallback.New(trustedVerifier(), fallback.WithWalletURL("https://wallet-staging.frontiertower.io"))
	assert.Contains(t, r.Message(), "https://wallet-staging.frontiertower.io")
}
