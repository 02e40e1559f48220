package origin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerlinhouseLabs/frontier-sdk/hosttest"
	"github.com/BerlinhouseLabs/frontier-sdk/origin"
)

var allowed = []string{
	"http://localhost:5173",
	"https://wallet.frontiertower.io",
}

func TestTrustedReferrer(t *testing.T) {
	frame := &hosttest.Frame{
		Self:     "https://miniapp.example",
		Embedded: true,
		Referrer: "https://wallet.frontiertower.io",
	}
	v := origin.NewVerifier(frame, allowed)

	assert.True(t, v.IsEmbedded())
	assert.True(t, v.IsTrustedAncestor())

	o, ok := v.AncestorOrigin()
	require.True(t, ok)
	assert.Equal(t, "https://wallet.frontiertower.io", o)
}

func TestUntrustedReferrer(t *testing.T) {
	frame := &hosttest.Frame{
		Self:     "https://miniapp.example",
		Embedded: true,
		Referrer: "https://evil.example",
	}
	v := origin.NewVerifier(frame, allowed)

	assert.True(t, v.IsEmbedded())
	assert.False(t, v.IsTrustedAncestor())
}

func TestReferrerPathIsNormalizedAway(t *testing.T) {
	frame := &hosttest.Frame{
		Self:     "https://miniapp.example",
		Embedded: true,
		Referrer: "https://wallet.frontiertower.io/apps/launcher?tab=all",
	}
	v := origin.NewVerifier(frame, allowed)

	o, ok := v.AncestorOrigin()
	require.True(t, ok)
	assert.Equal(t, "https://wallet.frontiertower.io", o)
	assert.True(t, v.IsTrustedAncestor())
}

func TestTopOriginFallbackSameOrigin(t *testing.T) {
	// Local development: no referrer, loopback ancestor is same-origin
	// so the direct read succeeds.
	frame := &hosttest.Frame{
		Self:     "http://localhost:5173",
		Embedded: true,
		Top:      "http://localhost:5173",
	}
	v := origin.NewVerifier(frame, allowed)

	o, ok := v.AncestorOrigin()
	require.True(t, ok)
	assert.Equal(t, "http://localhost:5173", o)
	assert.True(t, v.IsTrustedAncestor())
}

func TestCrossOriginReadFailureIsNotDistrust(t *testing.T) {
	// The direct read fails cross-origin; the referrer signal still
	// establishes trust on its own.
	frame := &hosttest.Frame{
		Self:        "https://miniapp.example",
		Embedded:    true,
		Referrer:    "https://wallet.frontiertower.io",
		CrossOrigin: true,
	}
	v := origin.NewVerifier(frame, allowed)
	assert.True(t, v.IsTrustedAncestor())
}

func TestNoSignalMeansUntrusted(t *testing.T) {
	frame := &hosttest.Frame{
		Self:        "https://miniapp.example",
		Embedded:    true,
		CrossOrigin: true,
	}
	v := origin.NewVerifier(frame, allowed)

	_, ok := v.AncestorOrigin()
	assert.False(t, ok)
	assert.False(t, v.IsTrustedAncestor())
}

func TestNotEmbedded(t *testing.T) {
	frame := &hosttest.Frame{Self: "https://miniapp.example"}
	v := origin.NewVerifier(frame, allowed)

	assert.False(t, v.IsEmbedded())
	assert.False(t, v.IsTrustedAncestor())
	_, ok := v.AncestorOrigin()
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://wallet.frontiertower.io", "https://wallet.frontiertower.io", true},
		{"HTTPS://Wallet.FrontierTower.IO", "https://wallet.frontiertower.io", true},
		{"https://wallet.frontiertower.io/path#frag", "https://wallet.frontiertower.io", true},
		{"http://localhost:5173", "http://localhost:5173", true},
		{"  http://localhost:5173  ", "http://localhost:5173", true},
		{"not a url", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := origin.Normalize(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
