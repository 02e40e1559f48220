package log

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Record is the JSON shape of an app:log notification payload.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Attrs     []Attr    `json:"attrs,omitempty"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// Attr is a single flattened slog attribute.
type Attr struct {
	Key   string `json:"key"`
	Type  string `json:"type"` // "string", "int64", "bool", "float64", "time", "error", "json", "any"
	Value string `json:"value"`
}

// toAttr flattens a slog.Attr into its wire form.
func toAttr(attr slog.Attr) Attr {
	a := Attr{Key: attr.Key}
	attr.Value = attr.Value.Resolve()

	switch attr.Value.Kind() {
	case slog.KindString:
		a.Type = "string"
		a.Value = attr.Value.String()
	case slog.KindInt64:
		a.Type = "int64"
		a.Value = fmt.Sprintf("%d", attr.Value.Int64())
	case slog.KindUint64:
		a.Type = "uint64"
		a.Value = fmt.Sprintf("%d", attr.Value.Uint64())
	case slog.KindBool:
		a.Type = "bool"
		a.Value = fmt.Sprintf("%t", attr.Value.Bool())
	case slog.KindFloat64:
		a.Type = "float64"
		a.Value = fmt.Sprintf("%f", attr.Value.Float64())
	case slog.KindTime:
		a.Type = "time"
		a.Value = attr.Value.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		a.Type = "duration"
		a.Value = attr.Value.Duration().String()
	case slog.KindAny:
		v := attr.Value.Any()
		if v == nil {
			a.Type = "any"
			a.Value = "<nil>"
			break
		}
		if err, isErr := v.(error); isErr {
			a.Type = "error"
			a.Value = err.Error()
		} else if data, marshalErr := json.Marshal(v); marshalErr == nil {
			a.Type = "json"
			a.Value = string(data)
		} else {
			a.Type = "any"
			a.Value = fmt.Sprintf("%v", v)
		}
	default:
		a.Type = "any"
		a.Value = fmt.Sprintf("%v", attr.Value.Any())
	}
	return a
}
