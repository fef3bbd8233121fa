package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/arith"
	"github.com/dhamidi/pcomb/format"
)

func newExprCmd() *cobra.Command {
	var outputFormat string
	var evaluate bool
	var varDefs []string

	cmd := &cobra.Command{
		Use:           "expr <expression>",
		Short:         "Parse an arithmetic expression",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := arith.Parse(args[0])
			if err != nil {
				return err
			}

			if evaluate {
				vars, err := parseVarDefs(varDefs)
				if err != nil {
					return err
				}
				result, err := arith.Eval(e, vars)
				if err != nil {
					return err
				}
				fmt.Println(strconv.FormatFloat(result, 'g', -1, 64))
				return nil
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewTreeEncoder(os.Stdout)
			case "pretty":
				encoder = format.NewExprEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(e); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "pretty", "output format (pretty, json)")
	cmd.Flags().BoolVar(&evaluate, "eval", false, "evaluate the expression instead of printing its tree")
	cmd.Flags().StringArrayVar(&varDefs, "var", nil, "variable binding for --eval, as name=value")

	return cmd
}

func parseVarDefs(defs []string) (map[string]float64, error) {
	vars := map[string]float64{}
	for _, def := range defs {
		name, value, ok := strings.Cut(def, "=")
		if !ok {
			return nil, fmt.Errorf("invalid variable binding %q, want name=value", def)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value in %q: %w", def, err)
		}
		vars[name] = f
	}
	return vars, nil
}
