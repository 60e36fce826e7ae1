package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/linemark/internal/config"
	"github.com/mithrel/linemark/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// configFlags maps persistent flag names onto config keys.
var configFlags = map[string]string{
	"style":         "preview.style",
	"history-depth": "history.depth",
	"first-type":    "split.first_type",
	"detect":        "split.detect",
	"export":        "export.path",
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "linemark",
		Short:         "linemark: turn lines of text into structured Markdown",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyConfigFlagOverrides(cmd, v, configFlags)
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			app.Log.Printf("command %s (config %q)", cmd.CommandPath(), v.ConfigFileUsed())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app, ok := cmd.Context().Value(appKey).(*wire.App); ok {
				return app.Close()
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (toml)")
	pf.String("style", "", "preview style (auto|dark|light|notty|dracula|tokyo-night|pink|ascii)")
	pf.Int("history-depth", 0, "undo steps to keep")
	pf.String("first-type", "", "block type of the first line")
	pf.Bool("detect", true, "detect block types of later lines from their prefix")
	pf.String("export", "", "file written by the editor's write key")
	_ = cmd.RegisterFlagCompletionFunc("first-type", completeBlockTypes)
	_ = cmd.RegisterFlagCompletionFunc("style", completeStyles)

	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newTypesCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
