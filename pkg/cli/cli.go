package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/rebranch/pkg/cli/config"
	"github.com/m-mizutani/rebranch/pkg/utils/errutil"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging sets up the default logger from the global log flags.
// Tests replace it to observe the flag values.
var ConfigureLogging = logging.Configure

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		sentryCfg config.Sentry
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("REBRANCH_LOG_LEVEL"),
			Destination: &logLevel,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("REBRANCH_LOG_FORMAT"),
			Destination: &logFormat,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("REBRANCH_LOG_OUTPUT"),
			Destination: &logOutput,
			Value:       "-",
		},
	}
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:  "rebranch",
		Usage: "Rename the default branch of your GitHub repositories",
		Flags: flags,
		Commands: []*cli.Command{
			renameCommand(),
			listCommand(),
		},
		DefaultCommand: "rename",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			ctx = withRunLogger(ctx)

			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run_id is shared by Before, the commands and the fatal error report.
	_, ctx = logging.CtxRunID(ctx)
	defer func() {
		if err := logging.Close(); err != nil {
			logging.Default().Warn("failed to close log output", slog.Any("error", err))
		}
	}()

	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(withRunLogger(ctx), "fatal error", err)
		return err
	}

	return nil
}

// withRunLogger attaches the configured default logger, tagged with the run ID, to ctx.
func withRunLogger(ctx context.Context) context.Context {
	runID, ctx := logging.CtxRunID(ctx)
	return logging.With(ctx, logging.Default().With(slog.String("run_id", runID.String())))
}
