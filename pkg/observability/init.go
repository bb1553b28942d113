package observability

import (
	"io"
	"log/slog"

	"github.com/Sumatoshi-tech/seqstat/pkg/config"
	"github.com/Sumatoshi-tech/seqstat/pkg/version"
)

// ServiceName tags every record written by a logger from NewLogger.
const ServiceName = "seqstat"

// NewLogger builds a JSON or text logger writing to w, wrapped in a TracingHandler.
// Every record carries the seqstat version.
func NewLogger(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if cfg.JSON {
		inner = slog.NewJSONHandler(w, handlerOpts)
	} else {
		inner = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(NewTracingHandler(inner, ServiceName)).With("version", version.Version), nil
}
