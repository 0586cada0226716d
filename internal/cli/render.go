package cli

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dgallion1/lessonmark/internal/engine"
	"github.com/dgallion1/lessonmark/internal/render/termview"
)

func newRenderCmd() *cobra.Command {
	var (
		width   int
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render generated text to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			mode, view, err := modeAndView(cmd, a)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			p, err := engine.Prepare(engine.Request{Text: text, Mode: mode, View: view})
			if err != nil {
				return err
			}
			a.log.Debug("rendering", "mode", p.Mode, "view", p.View, "blocks", p.Doc.Len(), "has_answer_key", p.HasAnswerKey)

			if !cmd.Flags().Changed("width") {
				width = a.cfg.TermWidth
			}
			opts := []termview.Option{termview.WithWidth(width)}
			if noColor {
				opts = append(opts, termview.WithColorProfile(termenv.Ascii))
			}
			out := cmd.OutOrStdout()
			_, err = fmt.Fprintln(out, termview.New(out, opts...).Render(p.Interactive()))
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "wrap width in columns (default from config, 0 disables)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors and text attributes")
	return cmd
}
