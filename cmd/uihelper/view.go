package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"

	"github.com/alexisbeaulieu97/uihelper/internal/app"
	"github.com/alexisbeaulieu97/uihelper/internal/icons"
	"github.com/alexisbeaulieu97/uihelper/internal/tui/imageview"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
)

type viewOptions struct {
	width  int
	height int
}

func newViewCmd(flags *rootFlags) *cobra.Command {
	opts := viewOptions{}

	cmd := &cobra.Command{
		Use:   "view IMAGE",
		Short: "Show an image with zoom and pan",
		Long: `Show a PNG, JPEG, GIF or BMP image. On a terminal the wheel zooms around
the pointer, a middle button drag pans and "f" fits the image; otherwise
the image is printed once, scaled to --width by --height cells.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := decodeImage(args[0])
			if err != nil {
				return err
			}
			if interactive(cmd, flags) {
				s, err := loadSession(cmd, flags)
				if err != nil {
					return err
				}
				return runView(commandContext(cmd), s, args[0], img)
			}
			if opts.width <= 0 || opts.height <= 0 {
				return fmt.Errorf("frame size must be positive, got %dx%d", opts.width, opts.height)
			}
			fmt.Fprintln(cmd.OutOrStdout(), icons.HalfBlock(icons.Scale(img, opts.width, opts.height*2)))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 80, "Width in cells for static output")
	cmd.Flags().IntVar(&opts.height, "height", 24, "Height in cells for static output")

	return cmd
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

func runView(ctx context.Context, s *session, path string, img image.Image) error {
	appCtx, err := s.newContext()
	if err != nil {
		return err
	}
	defer appCtx.Close()

	viewer := imageview.New()
	viewer.SetImage(img)
	viewer.Focus()
	window := widget.NewWindow()
	window.SetWindowTitle(path)
	window.SetLayout(viewer)
	window.Show()

	application, err := app.New(appCtx, window, app.WithStyleSheet(s.cfg.CSS))
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
