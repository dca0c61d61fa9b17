package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rshade/recordgrid/internal/config"
	"github.com/rshade/recordgrid/internal/logging"
	"github.com/rshade/recordgrid/internal/tui"
)

type configKey struct{}

// loadConfig reads the config file named by --config (or the default path)
// and stores it on the command context.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cmd.SetContext(context.WithValue(contextOf(cmd), configKey{}, cfg))
	return cfg, nil
}

// configFrom returns the config loaded for this invocation, or the defaults.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.New()
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.LogPathResult {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
	}

	logCfg := loggingCfg.ToLoggingConfig()

	// A full-screen program owns the terminal. Without a log file, drop logs.
	if cmd.Annotations[annotationInteractive] == "true" &&
		logCfg.Output != logging.OutputFile &&
		tui.DetectOutputMode(false, false, false) == tui.OutputModeInteractive {
		logCfg.Output = logging.OutputDiscard
	}

	result := logging.NewLoggerWithPath(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := contextOf(cmd)
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("config", cfg.Path()).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
