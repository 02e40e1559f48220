// Package schema provides JSON schema generation for the method
// registry.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Generate creates a JSON Schema (Draft 2020-12) from a Go value by
// reflection. Struct definitions are expanded inline; for non-struct
// values the reflector is used as-is because inline expansion only
// applies to named struct roots.
func Generate(v any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	reflector := jsonschema.Reflector{
		ExpandedStruct: t.Kind() == reflect.Struct,
	}
	s := reflector.Reflect(v)

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
