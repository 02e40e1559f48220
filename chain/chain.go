// Package chain is the typed facade for chain-configuration host
// methods.
package chain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BerlinhouseLabs/frontier-sdk/bridge"
	"github.com/BerlinhouseLabs/frontier-sdk/methods"
)

// Client issues chain calls through the bridge.
type Client struct {
	caller bridge.Caller
}

// New creates a chain client.
func New(c bridge.Caller) *Client {
	return &Client{caller: c}
}

// Config returns the chain configuration the host wallet operates on.
func (c *Client) Config(ctx context.Context) (methods.ChainConfig, error) {
	raw, err := c.caller.Call(ctx, methods.ChainGetConfig, nil)
	if err != nil {
		return methods.ChainConfig{}, err
	}
	var cfg methods.ChainConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return methods.ChainConfig{}, fmt.Errorf("failed to decode chain config: %w", err)
	}
	return cfg, nil
}

// Networks returns the network identifiers the host supports.
func (c *Client) Networks(ctx context.Context) ([]string, error) {
	raw, err := c.caller.Call(ctx, methods.ChainGetNetworks, nil)
	if err != nil {
		return nil, err
	}
	var networks []string
	if err := json.Unmarshal(raw, &networks); err != nil {
		return nil, fmt.Errorf("failed to decode networks: %w", err)
	}
	return networks, nil
}
