package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/combinator"
)

func newMatchCmd() *cobra.Command {
	var literal string
	var pattern string

	cmd := &cobra.Command{
		Use:           "match <input>",
		Short:         "Apply a literal or pattern parser to input and show the outcome",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p combinator.Parser
			switch {
			case literal != "" && pattern != "":
				return fmt.Errorf("--literal and --pattern are mutually exclusive")
			case literal != "":
				p = combinator.Trace("literal", combinator.String(literal))
			case pattern != "":
				p = combinator.Trace("pattern", combinator.Regex(pattern))
			default:
				return fmt.Errorf("one of --literal or --pattern is required")
			}

			v, st, err := p.Parse(combinator.NewState(args[0]))
			if err != nil {
				return fmt.Errorf("no match: %w", err)
			}

			fmt.Printf("matched: %v\n", v)
			fmt.Printf("consumed: %d byte(s)\n", st.Pos())
			fmt.Printf("remaining: %q\n", st.Remaining())
			return nil
		},
	}

	cmd.Flags().StringVar(&literal, "literal", "", "match this literal string")
	cmd.Flags().StringVar(&pattern, "pattern", "", "match this regular expression")

	return cmd
}
