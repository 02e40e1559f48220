// Package config holds the SDK configuration: the fixed allow-list of
// wallet host origins and the per-call deadline.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is validated at load time and treated as read-only afterwards.
type Config struct {
	// AppName identifies the mini-app in host logs and the fallback
	// screen.
	AppName string `yaml:"app_name" validate:"required"`

	// AllowedOrigins is the exact-match allow-list of embedding
	// ancestors. Read it through Origins to keep the slice unshared.
	AllowedOrigins []string `yaml:"allowed_origins" validate:"min=1,dive,required"`

	// CallTimeout is the deadline applied to every host call.
	CallTimeout Duration `yaml:"call_timeout" validate:"gt=0"`
}

// Duration is a time.Duration that unmarshals from YAML duration
// strings ("30s") as well as integer nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	*d = Duration(n)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

var validate = validator.New()

// Default returns the stock configuration: one loopback development
// origin, three staged origins, and the production wallet origin.
func Default() Config {
	return Config{
		AppName: "mini-app",
		AllowedOrigins: []string{
			"http://localhost:5173",
			"https://wallet-dev.frontiertower.io",
			"https://wallet-staging.frontiertower.io",
			"https://wallet-preview.frontiertower.io",
			"https://wallet.frontiertower.io",
		},
		CallTimeout: Duration(30 * time.Second),
	}
}

// Load parses a YAML document over the defaults and validates the
// result. Absent fields keep their default values.
func Load(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration's constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Origins returns a copy of the allow-list so callers cannot mutate the
// configuration through the returned slice.
func (c Config) Origins() []string {
	out := make([]string, len(c.AllowedOrigins))
	copy(out, c.AllowedOrigins)
	return out
}
