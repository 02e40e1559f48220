// Package user is the typed facade for user-profile host methods.
package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BerlinhouseLabs/frontier-sdk/bridge"
	"github.com/BerlinhouseLabs/frontier-sdk/methods"
)

// Client issues user calls through the bridge.
type Client struct {
	caller bridge.Caller
}

// New creates a user client.
func New(c bridge.Caller) *Client {
	return &Client{caller: c}
}

// Profile returns the host user's public profile.
func (c *Client) Profile(ctx context.Context) (methods.Profile, error) {
	raw, err := c.caller.Call(ctx, methods.UserGetProfile, nil)
	if err != nil {
		return methods.Profile{}, err
	}
	var p methods.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return methods.Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return p, nil
}
