package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/linemark/internal/blocks"
	"github.com/mithrel/linemark/internal/doc"
	"github.com/mithrel/linemark/internal/present"
	"github.com/mithrel/linemark/pkg/api"
)

func newConvertCmd() *cobra.Command {
	var outputMode string
	var typeOverrides []string
	var decorations []string
	var disabled []int
	var writePath string
	var title string
	var indent bool
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Split text into items and print the assembled Markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			d, _, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			if err := applyTypeOverrides(d, typeOverrides); err != nil {
				return err
			}
			if err := applyDecorations(d, decorations); err != nil {
				return err
			}
			for _, n := range disabled {
				it, err := d.Item(n - 1)
				if err != nil {
					return fmt.Errorf("--disable %d: %w", n, err)
				}
				if it.Active {
					if _, err := d.Toggle(n - 1); err != nil {
						return err
					}
				}
			}

			opts := present.Options{
				Mode:       mode,
				JSONIndent: indent,
				Headers:    !noHeaders,
				Title:      title,
				HTML:       htmlOptions(app),
				Style:      app.Cfg.GetString("preview.style"),
				Width:      app.Cfg.GetInt("preview.word_wrap"),
				TUI:        tuiOptions(app),
			}
			if writePath == "" {
				return renderDocument(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), d, opts)
			}
			if mode == present.ModeTUI {
				return fmt.Errorf("--write cannot be combined with --output tui")
			}
			var buf bytes.Buffer
			if err := present.RenderDocument(cmd.Context(), &buf, d, opts); err != nil {
				return err
			}
			if dir := filepath.Dir(writePath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("write %s: %w", writePath, err)
				}
			}
			if err := os.WriteFile(writePath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", writePath, err)
			}
			app.Log.Printf("wrote %d bytes to %s", buf.Len(), writePath)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", writePath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputMode, "output", "o", "markdown", "output mode: markdown|html|json|ndjson|plain|pretty|tui")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"markdown", "html", "json", "ndjson", "plain", "pretty", "tui"}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().StringArrayVar(&typeOverrides, "type", nil, "set item N to a block type, as N=kind (repeatable)")
	cmd.Flags().StringArrayVar(&decorations, "decorate", nil, "decorate item N, as N=bold|italic|strike|code|link|rule|details (repeatable)")
	cmd.Flags().IntSliceVar(&disabled, "disable", nil, "leave item N out of the Markdown (repeatable)")
	cmd.Flags().StringVarP(&writePath, "write", "w", "", "write the output to a file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "HTML page title")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers (plain)")
	return cmd
}

// parseItemArg splits "N=value" into a zero-based index and the value.
func parseItemArg(flag, arg string) (int, string, error) {
	num, val, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, "", fmt.Errorf("--%s %q: want N=value", flag, arg)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil || n < 1 {
		return 0, "", fmt.Errorf("--%s %q: item number must be a positive integer", flag, arg)
	}
	return n - 1, strings.TrimSpace(val), nil
}

func applyTypeOverrides(d *doc.Document, args []string) error {
	for _, arg := range args {
		i, val, err := parseItemArg("type", arg)
		if err != nil {
			return err
		}
		t, err := api.ParseBlockType(val)
		if err != nil {
			return fmt.Errorf("--type %q: %w", arg, err)
		}
		if err := d.SetType(i, t); err != nil {
			return fmt.Errorf("--type %q: %w", arg, err)
		}
	}
	return nil
}

func applyDecorations(d *doc.Document, args []string) error {
	for _, arg := range args {
		i, val, err := parseItemArg("decorate", arg)
		if err != nil {
			return err
		}
		dec, err := blocks.ParseDecoration(val)
		if err != nil {
			return fmt.Errorf("--decorate %q: %w", arg, err)
		}
		if err := d.Decorate(i, dec); err != nil {
			return fmt.Errorf("--decorate %q: %w", arg, err)
		}
	}
	return nil
}
