package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/format"
	"github.com/dhamidi/pcomb/jsonval"
)

func newJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "json [file]",
		Short:         "Parse a JSON document and print it re-encoded",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			v, err := jsonval.Parse(string(data))
			if err != nil {
				return err
			}

			if err := format.NewJSONEncoder(os.Stdout).Encode(v); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	return cmd
}
