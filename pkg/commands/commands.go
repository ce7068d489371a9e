package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/alert"
	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/runner/list"
	"tableflip.dev/moodlog/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodlog",
		Short: options.Wrap80("Track habits and moods, one day at a time."),
		Long: options.Wrap80("Track habits and moods, one day at a time. " +
			"Run without a command to list your entries, or see the help below to get started."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd.Context(), true)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			if env.Service.Landing(cmd.Context()) != app.RouteEntries {
				return cmd.Help()
			}
			l := list.List{JSON: output.JSON, Service: env.Service}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}

// environment is what a command needs to run against the configured store.
type environment struct {
	Config  store.Config
	Service *app.Service
	detach  func()
}

// Close stops pending alert timers and detaches the alert printer.
func (e *environment) Close() {
	if e.detach != nil {
		e.detach()
	}
	if e.Service != nil && e.Service.Alerts != nil {
		e.Service.Alerts.Close()
	}
}

// setup loads configuration and storage. When printAlerts is set, alerts are
// echoed to stderr as they are raised.
func setup(ctx context.Context, printAlerts bool) (*environment, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if output.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	env := &environment{
		Config: cfg,
		Service: &app.Service{
			Persistence: p,
			Alerts:      alert.New(alert.WithDelay(cfg.AlertDelay())),
			Logger:      logger,
		},
	}
	if printAlerts && !output.JSON {
		ap := printers.AlertPrinter{Out: color.Error}
		env.detach = ap.Attach(env.Service.Alerts)
	}
	logger.DebugContext(ctx, "store ready", "path", cfg.BasePath(), "config", store.ConfigFile(cfg))
	return env, nil
}
