// Package logger provides slog attribute helpers shared across the module
// so log fields stay consistently named.
package logger

import "log/slog"

// Error returns a standard attribute for an error value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

// Component names the subsystem emitting the log record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID attaches the request correlation ID.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Event names a discrete occurrence for log filtering.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
