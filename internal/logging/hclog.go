package logging

import (
	"context"

	"github.com/hashicorp/go-hclog"
)

// HclogLogger adapts an hclog.Logger to Logger. hclog has no notion of a
// context, so ctx is accepted and ignored.
type HclogLogger struct {
	l hclog.Logger
}

func NewHclogLogger(l hclog.Logger) *HclogLogger {
	return &HclogLogger{l: l}
}

func (h *HclogLogger) Debug(_ context.Context, msg string, args ...any) {
	h.l.Debug(msg, args...)
}

func (h *HclogLogger) Info(_ context.Context, msg string, args ...any) {
	h.l.Info(msg, args...)
}

func (h *HclogLogger) Warn(_ context.Context, msg string, args ...any) {
	h.l.Warn(msg, args...)
}

func (h *HclogLogger) Error(_ context.Context, msg string, args ...any) {
	h.l.Error(msg, args...)
}

func (h *HclogLogger) With(args ...any) Logger {
	return &HclogLogger{l: h.l.With(args...)}
}
