package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/uihelper/internal/app"
	"github.com/alexisbeaulieu97/uihelper/internal/config"
	"github.com/alexisbeaulieu97/uihelper/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
	static     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uihelper",
		Short:         "uihelper builds terminal interfaces from factories and markup",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to application configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug diagnostics")
	cmd.PersistentFlags().BoolVar(&flags.static, "static", false, "Print a single frame instead of running interactively")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newIconsCmd())
	cmd.AddCommand(newViewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// session is the configuration and diagnostics shared by every command.
type session struct {
	cfg  *config.Config
	diag *logger.Logger
}

func loadSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *parsed
	}

	opts := cfg.LoggerOptions()
	opts.Writer = cmd.ErrOrStderr()
	if flags.verbose {
		opts.Level = "debug"
	}
	diag, err := logger.New(opts)
	if err != nil {
		return nil, err
	}

	return &session{cfg: &cfg, diag: diag.Component("cli")}, nil
}

// newContext opens the application context the configuration describes.
func (s *session) newContext() (*app.Context, error) {
	return app.NewContext(app.ContextOptions{
		Name:        s.cfg.Name,
		Log:         s.cfg.Logging(),
		Diagnostics: s.diag,
	})
}

// interactive reports whether the command should run a full screen program.
func interactive(cmd *cobra.Command, flags *rootFlags) bool {
	if flags.static {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
