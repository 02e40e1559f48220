// Package wallet is the typed facade for wallet-domain host methods.
package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/BerlinhouseLabs/frontier-sdk/bridge"
	"github.com/BerlinhouseLabs/frontier-sdk/methods"
)

// Client issues wallet calls through the bridge.
type Client struct {
	caller bridge.Caller
}

// New creates a wallet client.
func New(c bridge.Caller) *Client {
	return &Client{caller: c}
}

// Balance returns the wallet balance in its smallest unit. The host
// sends it as a decimal string because the value routinely exceeds what
// a float survives.
func (c *Client) Balance(ctx context.Context) (*big.Int, error) {
	raw, err := c.caller.Call(ctx, methods.WalletGetBalance, nil)
	if err != nil {
		return nil, err
	}
	return decodeBigInt(raw)
}

// BalanceDisplay returns the host-formatted balance string.
func (c *Client) BalanceDisplay(ctx context.Context) (string, error) {
	raw, err := c.caller.Call(ctx, methods.WalletGetBalanceDisplay, nil)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("failed to decode balance display: %w", err)
	}
	return s, nil
}

// Accounts returns the accounts the host exposes to this mini-app.
func (c *Client) Accounts(ctx context.Context) ([]methods.Account, error) {
	raw, err := c.caller.Call(ctx, methods.WalletGetAccounts, nil)
	if err != nil {
		return nil, err
	}
	var accounts []methods.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}

// Address returns the active account address.
func (c *Client) Address(ctx context.Context) (string, error) {
	raw, err := c.caller.Call(ctx, methods.WalletGetAddress, nil)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("failed to decode address: %w", err)
	}
	return s, nil
}

// decodeBigInt accepts the balance either as a JSON string ("123") or,
// from older hosts, as a bare JSON number.
func decodeBigInt(raw json.RawMessage) (*big.Int, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid balance %q", s)
	}
	return n, nil
}
