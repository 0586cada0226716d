package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/lessonmark/internal/engine"
	"github.com/dgallion1/lessonmark/internal/render/printdoc"
)

func newPrintCmd() *cobra.Command {
	var (
		meta   printdoc.Meta
		date   string
		output string
	)
	cmd := &cobra.Command{
		Use:   "print [file|-]",
		Short: "Write a printable HTML document",
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

			m := meta
			m.Date = engine.Today(time.Now())
			if date != "" {
				if m.Date, err = time.Parse(time.DateOnly, date); err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
				}
			}
			page, err := p.Print(m)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), page)
				return err
			}
			if err := os.WriteFile(output, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.log.Info("print document written", "path", output, "bytes", len(page))
			return nil
		},
	}
	cmd.Flags().StringVar(&meta.Title, "title", "", "document title (default: heading)")
	cmd.Flags().StringVar(&meta.Heading, "heading", "", "header label (default from mode and view)")
	cmd.Flags().StringVar(&meta.Topic, "topic", "", "topic shown in the header")
	cmd.Flags().StringVar(&meta.Recipient, "recipient", "", "student name shown in the header")
	cmd.Flags().StringVar(&date, "date", "", "date shown in the header, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
