package methods

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnown(t *testing.T) {
	assert.True(t, Known(StorageGet))
	assert.True(t, Known(WalletGetBalance))
	assert.False(t, Known("wallet:transfer"))
	assert.False(t, Known(""))
}

func TestNamesIsClosedSet(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		ChainGetConfig,
		ChainGetNetworks,
		StorageGet,
		StorageKeys,
		StorageRemove,
		StorageSet,
		UserGetProfile,
		WalletGetAccounts,
		WalletGetAddress,
		WalletGetBalance,
		WalletGetBalanceDisplay,
	}, names)
}

func TestValidatePayload(t *testing.T) {
	assert.NoError(t, ValidatePayload(StorageGet, StorageGetPayload{Key: "k"}))
	assert.NoError(t, ValidatePayload(WalletGetBalance, nil))

	err := ValidatePayload(StorageGet, StorageGetPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Key")

	assert.Error(t, ValidatePayload(StorageGet, nil))
	assert.Error(t, ValidatePayload(WalletGetBalance, StorageGetPayload{Key: "k"}))
	assert.Error(t, ValidatePayload("wallet:transfer", nil))
}

func TestPayloadSchema(t *testing.T) {
	raw, err := PayloadSchema(StorageSet)
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema has no properties: %s", raw)
	assert.Contains(t, props, "key")
	assert.Contains(t, props, "value")
}

func TestPayloadSchema_NoPayloadMethod(t *testing.T) {
	raw, err := PayloadSchema(WalletGetBalance)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestResultSchema(t *testing.T) {
	raw, err := ResultSchema(UserGetProfile)
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema has no properties: %s", raw)
	assert.Contains(t, props, "id")
	assert.Contains(t, props, "username")
}

func TestSchemaUnknownMethod(t *testing.T) {
	_, err := PayloadSchema("wallet:transfer")
	assert.Error(t, err)
	_, err = ResultSchema("wallet:transfer")
	assert.Error(t, err)
}
