package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/timetable/internal/config"
	"github.com/alexanderramin/timetable/internal/logging"
)

// App holds what commands need at run time. Config and Logger are filled
// in by the root command before any subcommand runs.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// RunProgram runs the terminal UI. Tests replace it.
	RunProgram func(app *App) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timetable" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "timetable",
		Short:         "Academic timetable manager",
		Long:          "Manage your courses and availability constraints from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			app.Config = cfg
			app.Logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			run := app.RunProgram
			if run == nil {
				run = runProgram
			}
			return run(app)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (yaml, json, or toml)")
	pf.String("log-file", "", "write logs to this file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	root.Flags().String("page", "/", "start page: /, /courses, or /settings")
	root.Flags().Bool("collapsed", false, "start with the sidebar collapsed")

	root.AddCommand(
		newSlotsCmd(),
		newCourseCmd(app),
		newConstraintsCmd(app),
		newRoutesCmd(),
	)

	return root
}
