package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/lessonmark/internal/sections"
)

func newSplitCmd() *cobra.Command {
	var part string
	cmd := &cobra.Command{
		Use:   "split [file|-]",
		Short: "Separate worksheet questions from the answer key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			s := sections.Split(text)
			out := cmd.OutOrStdout()

			if part == "" {
				fmt.Fprintf(out, "questions: %d lines\n", strings.Count(s.Primary, "\n")+1)
				if s.HasSecondary {
					fmt.Fprintf(out, "answer key: %d lines\n", strings.Count(s.Secondary, "\n")+1)
				} else {
					fmt.Fprintln(out, "answer key: none")
				}
				return nil
			}

			view, err := sections.ParseView(part)
			if err != nil {
				return err
			}
			selected, ok := s.Select(view)
			if !ok {
				return fmt.Errorf("no %q section in input", sections.Sentinel)
			}
			_, err = io.WriteString(out, selected)
			return err
		},
	}
	cmd.Flags().StringVar(&part, "part", "", "print only this section: questions or answers")
	return cmd
}
