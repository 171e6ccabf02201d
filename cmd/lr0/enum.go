package main

import (
	"github.com/SungMinCho/Grammar/enumerate"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var enumFlags = struct {
	max   *int
	count *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "enum <grammar file>",
		Short:   "List terminal strings derivable from the start symbol",
		Example: `  lr0 enum --max 5 --count 20 expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runEnum,
	}
	enumFlags.max = cmd.Flags().Int("max", 8, "maximum string length")
	enumFlags.count = cmd.Flags().IntP("count", "n", 25, "maximum number of strings (0 = all)")
	rootCmd.AddCommand(cmd)
}

func runEnum(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	e := enumerate.New(g.Start, g.Productions,
		enumerate.MaxLength(*enumFlags.max),
		enumerate.Limit(*enumFlags.count))
	for s, ok := e.Next(); ok; s, ok = e.Next() {
		pterm.Println(s.String())
	}
	return nil
}
