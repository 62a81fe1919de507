package logger_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claydesk/flowtest-api/internal/config"
	"github.com/claydesk/flowtest-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	testCases := []struct {
		name      string
		logLevel  string
		expectErr bool
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "mixed case", logLevel: "Info"},
		{name: "invalid level", logLevel: "verbose", expectErr: true},
		{name: "empty level", logLevel: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{
				Port:        8000,
				LogLevel:    tc.logLevel,
				Environment: "test",
			})

			if tc.expectErr {
				require.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Same(t, log, slog.Default(), "Setup should install its logger as the default")
		})
	}
}

func TestFromContext(t *testing.T) {
	base := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := logger.WithLogger(context.Background(), base)
	assert.Same(t, base, logger.FromContext(ctx))

	// Without an attached logger, FromContext falls back to the default.
	assert.NotNil(t, logger.FromContext(context.Background()))
}
