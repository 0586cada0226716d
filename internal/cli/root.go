package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgallion1/lessonmark/internal/config"
	"github.com/dgallion1/lessonmark/internal/doctree"
	"github.com/dgallion1/lessonmark/internal/sections"
)

type ctxKey string

const appKey ctxKey = "app"

// app carries resolved configuration to subcommands.
type app struct {
	cfg config.Config
	log *slog.Logger
}

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the cobra root command and its subcommands.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "lessonmark",
		Short:         "Render generated feedback, lesson plans and worksheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			cfg, err := config.LoadFrom(v)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, &app{cfg: cfg, log: log}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	cmd.PersistentFlags().StringP("mode", "m", "", "presentation mode: feedback or worksheet (default from config)")
	cmd.PersistentFlags().String("view", "questions", "worksheet section: questions or answers")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newPrintCmd())
	cmd.AddCommand(newSplitCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) *app {
	if a, ok := cmd.Context().Value(appKey).(*app); ok {
		return a
	}
	// Without a config file Load cannot fail.
	cfg, _ := config.Load()
	return &app{cfg: cfg, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// modeAndView reads the persistent --mode and --view flags.
func modeAndView(cmd *cobra.Command, a *app) (doctree.Mode, sections.View, error) {
	m, _ := cmd.Flags().GetString("mode")
	mode, err := doctree.ParseMode(m, a.cfg.DefaultMode)
	if err != nil {
		return "", "", err
	}
	v, _ := cmd.Flags().GetString("view")
	view, err := sections.ParseView(v)
	if err != nil {
		return "", "", err
	}
	return mode, view, nil
}

// readInput reads the named file, or stdin when the name is "-" or absent.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}
