// Package storage is the typed facade for host-backed key/value
// storage. The persistence format is owned entirely by the host; this
// facade moves keys and raw JSON values.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BerlinhouseLabs/frontier-sdk/bridge"
	"github.com/BerlinhouseLabs/frontier-sdk/methods"
)

// Client issues storage calls through the bridge.
type Client struct {
	caller bridge.Caller
}

// New creates a storage client.
func New(c bridge.Caller) *Client {
	return &Client{caller: c}
}

// Get returns the raw JSON value stored under key.
func (c *Client) Get(ctx context.Context, key string) (json.RawMessage, error) {
	payload := methods.StorageGetPayload{Key: key}
	if err := methods.ValidatePayload(methods.StorageGet, payload); err != nil {
		return nil, err
	}
	return c.caller.Call(ctx, methods.StorageGet, payload)
}

// GetJSON decodes the value stored under key into out.
func (c *Client) GetJSON(ctx context.Context, key string, out any) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode value for %q: %w", key, err)
	}
	return nil
}

// Set stores value under key. value is marshaled to JSON.
func (c *Client) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}
	payload := methods.StorageSetPayload{Key: key, Value: raw}
	if err := methods.ValidatePayload(methods.StorageSet, payload); err != nil {
		return err
	}
	_, err = c.caller.Call(ctx, methods.StorageSet, payload)
	return err
}

// Remove deletes the value stored under key.
func (c *Client) Remove(ctx context.Context, key string) error {
	payload := methods.StorageRemovePayload{Key: key}
	if err := methods.ValidatePayload(methods.StorageRemove, payload); err != nil {
		return err
	}
	_, err := c.caller.Call(ctx, methods.StorageRemove, payload)
	return err
}

// Keys lists the keys this mini-app has stored.
func (c *Client) Keys(ctx context.Context) ([]string, error) {
	raw, err := c.caller.Call(ctx, methods.StorageKeys, nil)
	if err != nil {
		return nil, err
	}
	var keys []string
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("failed to decode keys: %w", err)
	}
	return keys, nil
}
