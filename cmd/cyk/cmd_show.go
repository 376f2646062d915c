package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/quenbyako/cyk/grammar"
)

func newShowCmd() *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "show <grammar>",
		Short: "Print a loaded grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0])
			if err != nil {
				return err
			}
			if strict {
				if err := g.Validate(); err != nil {
					return fmt.Errorf("invalid grammar %s: %w", args[0], err)
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				fmt.Fprintln(out, g.String())
			case "yaml":
				b, err := yaml.Marshal(g.Document())
				if err != nil {
					return fmt.Errorf("encoding grammar: %w", err)
				}
				out.Write(b)
			case "dump":
				pp.ColoringEnabled = isTerminal(out)
				pp.Fprintln(out, g.Document())
			default:
				return fmt.Errorf("unknown format: %s", format)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, yaml, dump)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if grammar is not a well formed CNF grammar")

	return cmd
}
