package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/quenbyako/cyk/cyk"
	"github.com/quenbyako/cyk/grammar"
	"github.com/quenbyako/cyk/render"
)

func newCheckCmd() *cobra.Command {
	var (
		fields     bool
		strict     bool
		printTable bool
		noColor    bool
		htmlDir    string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "check <grammar> <input>...",
		Short: "Run CYK for every input and print whether it is accepted",
		Long: `Run CYK for every input and print whether it is accepted.

Grammar is read from a JSON or YAML document (by extension) or from textual
notation like

    S : A B ;
    A : "a" ;
    B : "b" | A B ;

Every character of an input is a terminal, unless --fields is set.
Exit status is 1 if any input is rejected.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("cyk.check")

			g, err := grammar.Load(args[0])
			if err != nil {
				return err
			}
			if strict {
				if err := g.Validate(); err != nil {
					return fmt.Errorf("invalid grammar %s: %w", args[0], err)
				}
			}
			log.Infof("loaded %s: %d rules, start %v", args[0], g.Len(), g.Start)

			if htmlDir != "" {
				if err := os.MkdirAll(htmlDir, 0o755); err != nil {
					return fmt.Errorf("could not create %q: %w", htmlDir, err)
				}
			}

			tokenize := cyk.Chars
			if fields {
				tokenize = cyk.Fields
			}

			out := cmd.OutOrStdout()
			v := newVerdicts(out, noColor)
			p := cyk.New(g, cyk.WithWorkers(workers))

			rejected := 0
			for i, input := range args[1:] {
				accepted, table := p.Run(tokenize(input))
				if !accepted {
					rejected++
				}

				fmt.Fprintf(out, "%s %s\n", v.format(accepted), strconv.Quote(input))
				if printTable && table.Len() > 0 {
					fmt.Fprint(out, table.String())
				}

				if htmlDir != "" {
					path := filepath.Join(htmlDir, fmt.Sprintf("cyk-%d.html", i+1))
					if err := writeHTML(path, table, g.Start); err != nil {
						return err
					}
					log.Infof("wrote %s", path)
				}
			}

			if rejected > 0 {
				log.Infof("%d of %d inputs rejected", rejected, len(args)-1)
				return errRejected
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&fields, "fields", false, "split inputs on white space instead of characters")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if grammar is not a well formed CNF grammar")
	cmd.Flags().BoolVarP(&printTable, "table", "t", false, "print the CYK table after every verdict")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&htmlDir, "html", "", "write an HTML table for every input into this directory")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "goroutines filling a single span of the table")

	return cmd
}

type verdicts struct {
	accepted *color.Color
	rejected *color.Color
}

func newVerdicts(w io.Writer, noColor bool) verdicts {
	v := verdicts{
		accepted: color.New(color.FgGreen, color.Bold),
		rejected: color.New(color.FgRed, color.Bold),
	}
	if noColor || !isTerminal(w) {
		v.accepted.DisableColor()
		v.rejected.DisableColor()
	}

	return v
}

func (v verdicts) format(accepted bool) string {
	if accepted {
		return v.accepted.Sprint("accepted")
	}
	return v.rejected.Sprint("rejected")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeHTML(path string, table *cyk.Table, start grammar.Symbol) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()

	if err := render.HTML(f, table, start); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}
