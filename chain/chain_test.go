package chain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerlinhouseLabs/frontier-sdk/methods"
)

type stubCaller struct {
	method string
	result json.RawMessage
	err    error
}

func (s *stubCaller) Call(_ context.Context, method string, _ any) (json.RawMessage, error) {
	s.method = method
	return s.result, s.err
}

func TestConfig(t *testing.T) {
	caller := &stubCaller{result: json.RawMessage(`{
		"chainId": "frontier-1",
		"name": "Frontier Mainnet",
		"rpcUrl": "https://rpc.frontiertower.io",
		"nativeSymbol": "FRT",
		"decimals": 18
	}`)}
	c := New(caller)

	cfg, err := c.Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, methods.ChainGetConfig, caller.method)
	assert.Equal(t, "frontier-1", cfg.ChainID)
	assert.Equal(t, "Frontier Mainnet", cfg.Name)
	assert.Equal(t, 18, cfg.Decimals)
}

func TestNetworks(t *testing.T) {
	caller := &stubCaller{result: json.RawMessage(`["frontier-mainnet","frontier-testnet"]`)}
	c := New(caller)

	networks, err := c.Networks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, methods.ChainGetNetworks, caller.method)
	assert.Equal(t, []string{"frontier-mainnet", "frontier-testnet"}, networks)
}

func TestDecodeFailure(t *testing.T) {
	caller := &stubCaller{result: json.RawMessage(`"not an object"`)}
	c := New(caller)

	_, err := c.Config(context.Background())
	assert.Error(t, err)
}
