package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/linemark/internal/present/format"
	"github.com/mithrel/linemark/internal/present/tui"
	"github.com/mithrel/linemark/internal/render"
	"github.com/mithrel/linemark/internal/wire"
)

func newEditCmd() *cobra.Command {
	var printOnExit bool
	cmd := &cobra.Command{
		Use:   "edit [file|-]",
		Short: "Open the dual-pane editor on a file, stdin, or $EDITOR input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			d, name, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			final, err := tui.Run(cmd.Context(), d, tuiOptions(app))
			if err != nil {
				return fmt.Errorf("editor %s: %w", name, err)
			}
			if printOnExit {
				return format.WriteMarkdown(cmd.OutOrStdout(), final.Markdown())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&printOnExit, "print", "p", false, "print the Markdown on exit")
	return cmd
}

func htmlOptions(app *wire.App) render.Options {
	opts := render.DefaultOptions()
	opts.HardWraps = app.Cfg.GetBool("preview.hard_wraps")
	return opts
}

func tuiOptions(app *wire.App) tui.Options {
	return tui.Options{
		Style:        app.Cfg.GetString("preview.style"),
		WordWrap:     app.Cfg.GetInt("preview.word_wrap"),
		ExportPath:   app.Cfg.GetString("export.path"),
		ExportFormat: app.Cfg.GetString("export.format"),
		HTML:         htmlOptions(app),
		Copy:         app.CopyFunc(),
		Log:          app.Log,
	}
}
