package events

import (
	"expert-session-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
)

const logModule = "EVENT_BUS"

// loggerAdapter routes watermill's internal logs into the app logger.
type loggerAdapter struct {
	log    logger.ILogger
	fields watermill.LogFields
}

func NewLoggerAdapter(log logger.ILogger) watermill.LoggerAdapter {
	return &loggerAdapter{log: log}
}

func (a *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	details := a.merge(fields)
	if err != nil {
		details["error"] = err.Error()
	}
	a.log.Error(logModule, msg, details)
}

func (a *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(logModule, msg, a.merge(fields))
}

func (a *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(logModule, msg, a.merge(fields))
}

// Trace is folded into Debug.
func (a *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(logModule, msg, a.merge(fields))
}

func (a *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{log: a.log, fields: a.fields.Add(fields)}
}

func (a *loggerAdapter) merge(fields watermill.LogFields) map[string]interface{} {
	out := make(map[string]interface{}, len(a.fields)+len(fields))
	for k, v := range a.fields {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}
