package methods

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BerlinhouseLabs/frontier-sdk/internal/schema"
)

type methodSchemas struct {
	payload json.RawMessage
	result  json.RawMessage
}

var (
	schemasOnce sync.Once
	schemas     map[string]methodSchemas
	schemasErr  error
)

func buildSchemas() {
	schemas = make(map[string]methodSchemas, len(registry))
	for name, spec := range registry {
		p, err := schema.Generate(spec.Payload)
		if err != nil {
			schemasErr = fmt.Errorf("payload schema for %s: %w", name, err)
			return
		}
		r, err := schema.Generate(spec.Result)
		if err != nil {
			schemasErr = fmt.Errorf("result schema for %s: %w", name, err)
			return
		}
		schemas[name] = methodSchemas{payload: p, result: r}
	}
}

// PayloadSchema returns the JSON schema for a method's payload. Methods
// without a payload get the empty schema "{}".
func PayloadSchema(name string) (json.RawMessage, error) {
	schemasOnce.Do(buildSchemas)
	if schemasErr != nil {
		return nil, schemasErr
	}
	s, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown method %q", name)
	}
	return s.payload, nil
}

// ResultSchema returns the JSON schema for a method's result.
func ResultSchema(name string) (json.RawMessage, error) {
	schemasOnce.Do(buildSchemas)
	if schemasErr != nil {
		return nil, schemasErr
	}
	s, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown method %q", name)
	}
	return s.result, nil
}
