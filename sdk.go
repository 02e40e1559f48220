// Package frontier wires the SDK together for the common case: verify
// the embedding context, connect the bridge, and hand back the typed
// facades. Mini-apps with unusual needs can assemble the sub-packages
// themselves.
package frontier

import (
	"log/slog"

	"github.com/BerlinhouseLabs/frontier-sdk/bridge"
	"github.com/BerlinhouseLabs/frontier-sdk/chain"
	"github.com/BerlinhouseLabs/frontier-sdk/config"
	"github.com/BerlinhouseLabs/frontier-sdk/fallback"
	sdklog "github.com/BerlinhouseLabs/frontier-sdk/log"
	"github.com/BerlinhouseLabs/frontier-sdk/origin"
	"github.com/BerlinhouseLabs/frontier-sdk/storage"
	"github.com/BerlinhouseLabs/frontier-sdk/transport"
	"github.com/BerlinhouseLabs/frontier-sdk/user"
	"github.com/BerlinhouseLabs/frontier-sdk/wallet"
)

// Version of the SDK.
const Version = "0.2.0"

// App is a connected mini-app: the verifier, the bridge, and the typed
// facades over it.
type App struct {
	Verifier *origin.Verifier
	Bridge   *bridge.Bridge
	Wallet   *wallet.Client
	Storage  *storage.Client
	Chain    *chain.Client
	User     *user.Client
	Fallback *fallback.Renderer
	Logger   *slog.Logger
}

// Connect builds an App from a configuration, a frame, and a transport.
// It does not announce readiness; call App.Bridge.AnnounceReady once the
// mini-app has finished booting.
func Connect(cfg config.Config, frame origin.Frame, t transport.Transport, opts ...bridge.Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	verifier := origin.NewVerifier(frame, cfg.Origins())
	opts = append([]bridge.Option{bridge.WithTimeout(cfg.CallTimeout.Std())}, opts...)
	b := bridge.New(t, verifier, opts...)

	return &App{
		Verifier: verifier,
		Bridge:   b,
		Wallet:   wallet.New(b),
		Storage:  storage.New(b),
		Chain:    chain.New(b),
		User:     user.New(b),
		Fallback: fallback.New(verifier, fallback.WithAppName(cfg.AppName)),
		Logger:   slog.New(sdklog.NewHandler(b)),
	}, nil
}

// Close tears the app down. Pending calls fail with errors.ErrClosed.
func (a *App) Close() {
	a.Bridge.Shutdown()
}
