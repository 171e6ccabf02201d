package main

import (
	"fmt"
	"io"
	"os"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/SungMinCho/Grammar/grammarfile"
	"github.com/SungMinCho/Grammar/lr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace   *string
	workers *int
	limit   *int
}{}

var rootCmd = &cobra.Command{
	Use:   "lr0",
	Short: "Construct the LR(0) item sets of a grammar",
	Long: `lr0 reads a context-free grammar and constructs its characteristic
finite state machine (CFSM), the canonical collection of LR(0) item sets.
States and transitions may be listed, exported to Graphviz or explored
interactively.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.workers = rootCmd.PersistentFlags().IntP("workers", "w", 1, "goroutines computing goto sets")
	rootFlags.limit = rootCmd.PersistentFlags().Int("limit", 0, "maximum number of CFSM states (0 = unlimited)")
}

var traceKeys = []string{"grammar.grammar", "grammar.lr", "grammar.scanner", "grammar.enum"}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *rootFlags.trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// readGrammar reads a grammar file and reports validation issues as warnings.
func readGrammar(path string) (*grammar.Grammar, error) {
	var r io.Reader = os.Stdin
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open grammar %s: %w", path, err)
		}
		defer f.Close()
		r, name = f, path
	}
	g, err := grammarfile.Parse(name, r)
	if err != nil {
		return nil, err
	}
	for _, issue := range grammar.Validate(g) {
		pterm.Warning.Println(issue.String())
	}
	return g, nil
}

func cfsmOptions() []lr.Option {
	return []lr.Option{
		lr.Workers(*rootFlags.workers),
		lr.StateLimit(*rootFlags.limit),
	}
}

// buildCFSM reads a grammar and constructs its CFSM with the options given
// on the command line.
func buildCFSM(path string) (*grammar.Grammar, *lr.CFSM, error) {
	g, err := readGrammar(path)
	if err != nil {
		return nil, nil, err
	}
	cfsm, err := lr.BuildCFSM(g.Start, g.Productions, cfsmOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("grammar %s: %w", g.Name, err)
	}
	return g, cfsm, nil
}
