package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uihelper/internal/icons"
)

func newIconsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons [filter]",
		Short: "List the icon names known to the terminal glyph table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}
			out := cmd.OutOrStdout()
			for _, name := range icons.Names() {
				if !strings.Contains(name, filter) {
					continue
				}
				full := icons.MaterialPrefix + name
				fmt.Fprintf(out, "%s  %s\n", icons.Glyph(full), full)
			}
			return nil
		},
	}

	cmd.AddCommand(newIconsShowCmd())

	return cmd
}

type iconsShowOptions struct {
	catalog string
	width   int
	height  int
	color   []int
}

func newIconsShowCmd() *cobra.Command {
	opts := iconsShowOptions{}

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Draw a catalog icon with half block cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.catalog == "" {
				return fmt.Errorf("--catalog is required")
			}
			img, err := icons.NewCatalog(os.DirFS(opts.catalog)).Load(args[0], icons.Options{
				Width:  opts.width,
				Height: opts.height,
				Color:  opts.color,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), icons.HalfBlock(img))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "Directory holding material-icons/ and icons8-icons/")
	cmd.Flags().IntVar(&opts.width, "width", 16, "Maximum width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 16, "Maximum height in pixels")
	cmd.Flags().IntSliceVar(&opts.color, "color", nil, "Tint as r,g,b,a")

	return cmd
}
