package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uihelper/internal/app"
	"github.com/alexisbeaulieu97/uihelper/internal/dialogs"
	"github.com/alexisbeaulieu97/uihelper/internal/layout"
	"github.com/alexisbeaulieu97/uihelper/internal/logging"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
)

var demoLevels = []logging.Level{logging.Debug, logging.Info, logging.Warning, logging.Error}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a built in demonstration",
	}

	cmd.AddCommand(newDemoLoggerCmd(flags))
	cmd.AddCommand(newDemoDialogsCmd(flags))

	return cmd
}

type demoLoggerOptions struct {
	count    int
	workers  int
	interval time.Duration
}

// validate checks the flags. Interactive workers run until quit, so they
// need a positive interval.
func (o demoLoggerOptions) validate(interactive bool) error {
	if o.workers <= 0 {
		return errors.New("at least one worker is required")
	}
	if interactive && o.interval <= 0 {
		return errors.New("--interval must be positive on a terminal")
	}
	return nil
}

func newDemoLoggerCmd(flags *rootFlags) *cobra.Command {
	opts := demoLoggerOptions{}

	cmd := &cobra.Command{
		Use:   "logger",
		Short: "Log from background workers into a logger view",
		Long: `Start workers that log through the bridge from their own goroutines.
On a terminal the records appear in a logger table; otherwise each worker
logs --count records to the console and the command exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			live := interactive(cmd, flags)
			if err := opts.validate(live); err != nil {
				return err
			}
			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			if live {
				return runLoggerDemo(commandContext(cmd), s, opts)
			}
			appCtx, err := app.NewContext(app.ContextOptions{
				Name:        s.cfg.Name,
				Log:         withConsole(s.cfg.Logging(), cmd),
				Diagnostics: s.diag,
			})
			if err != nil {
				return err
			}
			defer appCtx.Close()
			opts.interval = 0
			produce(commandContext(cmd), appCtx, opts)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 5, "Records per worker in static mode")
	cmd.Flags().IntVar(&opts.workers, "workers", 2, "Number of logging goroutines")
	cmd.Flags().DurationVar(&opts.interval, "interval", 750*time.Millisecond, "Delay between records in interactive mode")

	return cmd
}

func withConsole(cfg logging.Config, cmd *cobra.Command) logging.Config {
	cfg.Console = true
	cfg.ConsoleWriter = cmd.OutOrStdout()
	return cfg
}

// produce logs from opts.workers goroutines and waits for them. Each worker
// stops after opts.count records, or when ctx ends if count is zero.
func produce(ctx context.Context, appCtx *app.Context, opts demoLoggerOptions) {
	var wg sync.WaitGroup
	for w := 1; w <= opts.workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			source := fmt.Sprintf("worker-%d", id)
			for i := 1; opts.count == 0 || i <= opts.count; i++ {
				level := demoLevels[(i+id)%len(demoLevels)]
				appCtx.Log(level, fmt.Sprintf("message %d", i), source)
				if opts.interval > 0 {
					select {
					case <-ctx.Done():
						return
					case <-time.After(opts.interval):
					}
				} else if ctx.Err() != nil {
					return
				}
			}
		}(w)
	}
	wg.Wait()
}

func runLoggerDemo(ctx context.Context, s *session, opts demoLoggerOptions) error {
	appCtx, err := s.newContext()
	if err != nil {
		return err
	}
	defer appCtx.Close()

	title := widget.NewLabel()
	title.SetText("Records from background workers. Right click a row for the menu, ctrl+c quits.")
	view := appCtx.LoggerView()
	view.Focus()
	box, err := layout.VBox(layout.Props{Spacing: 1}, title, layout.Weighted(view, 1))
	if err != nil {
		return err
	}
	window := widget.NewWindow()
	window.SetWindowTitle("Logger demo")
	window.SetLayout(box)
	window.Show()

	application, err := app.New(appCtx, window, app.WithStyleSheet(s.cfg.CSS))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	opts.count = 0
	go produce(ctx, appCtx, opts)
	return application.Run(ctx)
}

func newDemoDialogsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialogs",
		Short: "Walk through the file, message and colour dialogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(cmd, flags) {
				return errors.New("demo dialogs needs a terminal")
			}
			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			appCtx, err := s.newContext()
			if err != nil {
				return err
			}
			defer appCtx.Close()
			return runDialogsDemo(commandContext(cmd), cmd, s, appCtx)
		},
	}

	return cmd
}

func runDialogsDemo(ctx context.Context, cmd *cobra.Command, s *session, appCtx *app.Context) error {
	out := cmd.OutOrStdout()
	path, err := dialogs.ChooseFile(ctx, appCtx.Dialogs(), dialogs.Options{
		Native:      s.cfg.Dialogs.Native,
		UseLastPath: true,
	})
	if err != nil {
		return err
	}
	if path == "" {
		if err := dialogs.Alert(ctx, "No file", "The file dialog was cancelled."); err != nil {
			return err
		}
	} else {
		appCtx.Log(logging.Info, "chose "+path)
		if err := dialogs.ShowError(ctx, "File chosen", path, "Info"); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "file: %q\n", path)

	pick, err := dialogs.Confirm(ctx, "Colour", "Pick a colour next?")
	if err != nil {
		return err
	}
	if !pick {
		return nil
	}
	c, err := dialogs.ChooseColor(ctx, "", dialogs.DefaultColor)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "colour: %s\n", dialogs.Hex(c))
	return nil
}
