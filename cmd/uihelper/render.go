package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uihelper/internal/app"
	"github.com/alexisbeaulieu97/uihelper/internal/logging"
	"github.com/alexisbeaulieu97/uihelper/internal/markup"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
)

type renderOptions struct {
	watch  bool
	width  int
	height int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [markup.yaml]",
		Short: "Build a window from a markup file and show it",
		Long: `Build a window from a markup file. Without an argument the markup named
by the configuration file is used. On a terminal the window runs
interactively; otherwise a single frame is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			path := s.cfg.Markup
			if len(args) == 1 {
				path = args[0]
			}
			if strings.TrimSpace(path) == "" {
				return errors.New("markup file is required")
			}
			if interactive(cmd, flags) {
				return runRender(commandContext(cmd), s, path, opts)
			}
			return printRender(cmd, s, path, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the window when the markup file changes")
	cmd.Flags().IntVar(&opts.width, "width", 80, "Frame width for static output")
	cmd.Flags().IntVar(&opts.height, "height", 24, "Frame height for static output")

	return cmd
}

func printRender(cmd *cobra.Command, s *session, path string, opts renderOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", opts.width, opts.height)
	}
	window, err := markup.Load(path, markup.Options{Diagnostics: s.diag})
	if err != nil {
		return err
	}
	if s.cfg.CSS != "" {
		window.SetStyleSheet(s.cfg.CSS)
	}
	window.Update(tea.WindowSizeMsg{Width: opts.width, Height: opts.height})
	fmt.Fprintln(cmd.OutOrStdout(), window.View())
	return nil
}

func runRender(ctx context.Context, s *session, path string, opts renderOptions) error {
	appCtx, err := s.newContext()
	if err != nil {
		return err
	}
	defer appCtx.Close()

	var application *app.Application
	mopts := markup.Options{
		Diagnostics: s.diag,
		Handlers: map[string]any{
			"quit": func() { application.Quit() },
			"log":  func() { appCtx.Log(logging.Info, "triggered from markup") },
		},
	}
	window, err := markup.Load(path, mopts)
	if err != nil {
		return err
	}
	application, err = app.New(appCtx, window, app.WithStyleSheet(s.cfg.CSS))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if opts.watch {
		go func() {
			err := markup.Watch(ctx, path, mopts, func(w *widget.Window, err error) {
				if err == nil {
					application.Send(app.RootMsg{Root: w})
				}
			})
			if err != nil {
				s.diag.Error(err, "markup watch stopped")
			}
		}()
	}
	return application.Run(ctx)
}
