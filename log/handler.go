// Package log provides structured logging (slog) routed to the wallet
// host as app:log notifications.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BerlinhouseLabs/frontier-sdk/wire"
)

// Notifier sends fire-and-forget envelopes to the host. The bridge
// satisfies it.
type Notifier interface {
	Notify(method string, payload any) error
}

// HostHandler implements slog.Handler by forwarding records to the host.
// Records that cannot be delivered fall back to stderr so they are not
// silently lost.
type HostHandler struct {
	notifier Notifier
	opts     handlerConfig
	attrs    []Attr
	group    string
}

// Option configures the HostHandler.
type Option func(*handlerConfig)

type handlerConfig struct {
	level slog.Level
}

// WithLevel sets the minimum level to forward. Records below it are
// filtered on the mini-app side.
func WithLevel(level slog.Level) Option {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// NewHandler creates a HostHandler. A nil notifier logs to stderr only.
func NewHandler(n Notifier, opts ...Option) *HostHandler {
	cfg := handlerConfig{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &HostHandler{notifier: n, opts: cfg}
}

// Enabled reports whether records at the given level are forwarded.
func (h *HostHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// Handle serializes the record and sends it as an app:log notification.
func (h *HostHandler) Handle(_ context.Context, record slog.Record) error {
	rec := Record{
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
		Attrs:     append([]Attr(nil), h.attrs...),
	}
	record.Attrs(func(attr slog.Attr) bool {
		rec.Attrs = append(rec.Attrs, h.toAttr(attr))
		return true
	})

	if h.notifier == nil {
		fmt.Fprintf(os.Stderr, "%s %s %s\n", rec.Timestamp.Format(time.RFC3339), rec.Level, rec.Message)
		return nil
	}
	if err := h.notifier.Notify(wire.MethodLog, rec); err != nil {
		fmt.Fprintf(os.Stderr, "log delivery failed (%v): %s %s\n", err, rec.Level, rec.Message)
	}
	return nil
}

// WithAttrs returns a handler that includes attrs in every record.
func (h *HostHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]Attr(nil), h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, h.toAttr(a))
	}
	return &nh
}

// WithGroup returns a handler that prefixes attribute keys with name.
func (h *HostHandler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		nh.group += "."
	}
	nh.group += name
	return &nh
}

func (h *HostHandler) toAttr(attr slog.Attr) Attr {
	a := toAttr(attr)
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}
