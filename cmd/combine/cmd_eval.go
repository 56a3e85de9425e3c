package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhamidi/combine/arith"
	"github.com/dhamidi/combine/format"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var outputFormat string
	var bindings []string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Parse an arithmetic expression and print its value or tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := arith.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse expression: %w", err)
			}

			switch outputFormat {
			case "value":
				env, err := parseBindings(bindings)
				if err != nil {
					return err
				}
				value, err := arith.Eval(expr, env)
				if err != nil {
					return fmt.Errorf("evaluate: %w", err)
				}
				fmt.Println(strconv.FormatFloat(value, 'g', -1, 64))
			case "tree":
				if err := format.NewTextEncoder(os.Stdout).Encode(expr); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println()
			case "json":
				if err := format.NewJSONEncoder(os.Stdout).Encode(expr); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println()
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "value", "output format (value, tree, json)")
	cmd.Flags().StringArrayVarP(&bindings, "env", "e", nil, "variable binding in the form name=number (repeatable)")

	return cmd
}

func parseBindings(bindings []string) (map[string]float64, error) {
	env := make(map[string]float64, len(bindings))
	for _, b := range bindings {
		name, value, ok := strings.Cut(b, "=")
		if !ok {
			return nil, fmt.Errorf("invalid binding %q: want name=number", b)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid binding %q: %w", b, err)
		}
		env[name] = f
	}
	return env, nil
}
