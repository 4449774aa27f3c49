package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"

	"evalrunner/internal/config"
	"evalrunner/internal/logging"
)

// loadSettings reads runner settings from the environment.
var loadSettings = config.Load

// prepare loads settings and attaches a logger writing to stderr. Every
// record carries a fresh invocation_id.
func prepare(stderr io.Writer) (context.Context, config.Settings, bool) {
	ctx := context.Background()
	settings, err := loadSettings(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid settings:\n%v\n", err)
		return nil, config.Settings{}, false
	}
	logger, err := logging.New(stderr, settings.LogLevel, settings.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid settings:\n%v\n", err)
		return nil, config.Settings{}, false
	}
	logger = logger.With("invocation_id", uuid.NewString())
	return clog.WithLogger(ctx, logger), settings, true
}
