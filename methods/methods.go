// Package methods is the closed set of calls a mini-app may issue to
// the wallet host. Each method name maps to its payload and result
// shapes; the bridge stays agnostic and moves raw JSON, while the
// facades and this registry give the shapes compile-time and
// schema-level teeth.
package methods

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// Method names understood by the wallet host.
const (
	WalletGetBalance        = "wallet:getBalance"
	WalletGetBalanceDisplay = "wallet:getBalanceDisplay"
	WalletGetAccounts       = "wallet:getAccounts"
	WalletGetAddress        = "wallet:getAddress"

	StorageGet    = "storage:get"
	StorageSet    = "storage:set"
	StorageRemove = "storage:remove"
	StorageKeys   = "storage:keys"

	ChainGetConfig   = "chain:getConfig"
	ChainGetNetworks = "chain:getNetworks"

	UserGetProfile = "user:getProfile"
)

// StorageGetPayload asks for the value stored under Key.
type StorageGetPayload struct {
	Key string `json:"key" validate:"required"`
}

// StorageSetPayload stores Value under Key. Value is any JSON document;
// the persistence format is owned entirely by the host.
type StorageSetPayload struct {
	Key   string          `json:"key" validate:"required"`
	Value json.RawMessage `json:"value"`
}

// StorageRemovePayload deletes the value stored under Key.
type StorageRemovePayload struct {
	Key string `json:"key" validate:"required"`
}

// Account is one wallet account exposed to the mini-app.
type Account struct {
	Address string `json:"address"`
	Label   string `json:"label,omitempty"`
}

// Profile is the host user's public profile.
type Profile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// ChainConfig describes the chain the host wallet currently operates on.
type ChainConfig struct {
	ChainID      string `json:"chainId"`
	Name         string `json:"name"`
	RPCURL       string `json:"rpcUrl,omitempty"`
	ExplorerURL  string `json:"explorerUrl,omitempty"`
	NativeSymbol string `json:"nativeSymbol,omitempty"`
	Decimals     int    `json:"decimals,omitempty"`
}

// Spec ties a method name to its payload and result shapes. Payload and
// Result are nil for methods that carry none; Result values are zero
// instances used for schema generation only.
type Spec struct {
	Name    string
	Payload any
	Result  any
}

var registry = map[string]Spec{
	WalletGetBalance:        {Name: WalletGetBalance, Result: ""},
	WalletGetBalanceDisplay: {Name: WalletGetBalanceDisplay, Result: ""},
	WalletGetAccounts:       {Name: WalletGetAccounts, Result: []Account{}},
	WalletGetAddress:        {Name: WalletGetAddress, Result: ""},
	StorageGet:              {Name: StorageGet, Payload: StorageGetPayload{}},
	StorageSet:              {Name: StorageSet, Payload: StorageSetPayload{}},
	StorageRemove:           {Name: StorageRemove, Payload: StorageRemovePayload{}},
	StorageKeys:             {Name: StorageKeys, Result: []string{}},
	ChainGetConfig:          {Name: ChainGetConfig, Result: ChainConfig{}},
	ChainGetNetworks:        {Name: ChainGetNetworks, Result: []string{}},
	UserGetProfile:          {Name: UserGetProfile, Result: Profile{}},
}

var validate = validator.New()

// Known reports whether name belongs to the closed method set.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Get returns the Spec for name.
func Get(name string) (Spec, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns every known method name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ValidatePayload checks payload against the method's declared shape.
// Methods that declare no payload accept only nil.
func ValidatePayload(name string, payload any) error {
	spec, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown method %q", name)
	}
	if spec.Payload == nil {
		if payload != nil {
			return fmt.Errorf("method %q takes no payload", name)
		}
		return nil
	}
	if payload == nil {
		return fmt.Errorf("method %q requires a payload", name)
	}
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid %q payload: %w", name, err)
	}
	return nil
}
