package llm

import (
	"context"

	"github.com/rs/zerolog"
)

// LoggingMiddleware logs every invocation with zerolog. Request bodies are
// only logged at trace level.
type LoggingMiddleware struct {
	logger zerolog.Logger
}

// NewLoggingMiddleware creates a logging middleware writing to logger
func NewLoggingMiddleware(logger zerolog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

func (m *LoggingMiddleware) Name() string { return "logging" }

func (m *LoggingMiddleware) ProcessRequest(_ context.Context, inv *Invocation) (*Invocation, error) {
	m.logger.Debug().
		Str("invocation_id", inv.ID).
		Str("operation", string(inv.Operation)).
		Str("region", inv.Region).
		Str("model", inv.Model).
		Int("body_bytes", len(inv.Body)).
		Msg("invoking bedrock model")

	if e := m.logger.Trace(); e.Enabled() {
		e.Str("invocation_id", inv.ID).RawJSON("body", inv.Body).Msg("request body")
	}
	return inv, nil
}

func (m *LoggingMiddleware) ProcessResponse(_ context.Context, inv *Invocation, resp *InvocationResponse, err error) {
	if err != nil {
		m.logger.Warn().
			Err(err).
			Str("invocation_id", inv.ID).
			Str("model", inv.Model).
			Msg("bedrock invocation failed")
		return
	}

	level := zerolog.DebugLevel
	if resp.StatusCode >= 400 {
		level = zerolog.WarnLevel
	}
	m.logger.WithLevel(level).
		Str("invocation_id", inv.ID).
		Str("operation", string(inv.Operation)).
		Str("model", inv.Model).
		Int("status", resp.StatusCode).
		Dur("duration", resp.Duration).
		Msg("bedrock invocation completed")
}
