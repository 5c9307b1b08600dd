package main

import (
	"github.com/jacksmith/maze/internal/logger"
	"github.com/jacksmith/maze/internal/solver"
	"github.com/sirupsen/logrus"
)

// logTracer writes every search step to the debug log.
type logTracer struct {
	log *logrus.Logger
}

func (t logTracer) OnStep(e solver.Event) {
	fields := logrus.Fields{
		"from":  e.From.String(),
		"to":    e.To.String(),
		"depth": e.Depth,
	}
	if e.Move != 0 {
		fields["move"] = e.Move.String()
	}
	t.log.WithFields(fields).Debug(string(e.Kind))
}

// searchTracer returns a tracer when debug logging is on, otherwise nil so
// the search runs without per-step callbacks.
func searchTracer() solver.Tracer {
	if !logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		return nil
	}
	return logTracer{log: logger.Log}
}
