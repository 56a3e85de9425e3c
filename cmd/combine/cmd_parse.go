package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/combine/arith"
	"github.com/dhamidi/combine/format"
	"github.com/dhamidi/combine/jsondoc"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .expr or .json file and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			switch ext := filepath.Ext(filename); ext {
			case ".expr":
				expr, err := arith.Parse(strings.TrimRight(string(data), "\n"))
				if err != nil {
					return fmt.Errorf("parse expression: %w", err)
				}

				var encoder format.Encoder
				switch outputFormat {
				case "json":
					encoder = format.NewJSONEncoder(os.Stdout)
				case "text":
					encoder = format.NewTextEncoder(os.Stdout)
				default:
					return fmt.Errorf("unknown format: %s", outputFormat)
				}
				if err := encoder.Encode(expr); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println()
			case ".json":
				doc, err := jsondoc.Parse(string(data))
				if err != nil {
					return fmt.Errorf("parse document: %w", err)
				}
				out, err := json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println(string(out))
			default:
				return fmt.Errorf("unsupported file extension: %s (expected .expr or .json)", ext)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format for expressions (json, text)")

	return cmd
}
