package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/SungMinCho/Grammar/enumerate"
	"github.com/SungMinCho/Grammar/lr"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <grammar file>",
		Short:   "Explore the CFSM of a grammar interactively",
		Example: `  lr0 repl expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	g, cfsm, err := buildCFSM(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("lr0> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := newIntp(g, cfsm)
	pterm.Info.Printf("CFSM for %s has %d states. Enter 'help' for a list of commands.\n",
		g.Name, cfsm.Size())
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Println("Good bye!")
	return nil
}

var errUsage = errors.New("usage")

// Intp interprets commands for exploring a CFSM.
type Intp struct {
	g       *grammar.Grammar
	cfsm    *lr.CFSM
	symbols map[string]grammar.Symbol
	current int // state of the last 'state' or 'goto' command
}

func newIntp(g *grammar.Grammar, cfsm *lr.CFSM) *Intp {
	intp := &Intp{g: g, cfsm: cfsm, symbols: make(map[string]grammar.Symbol)}
	grammar.GrammarSymbols(cfsm.Productions()).Each(func(A grammar.Symbol) {
		intp.symbols[A.Name] = A
	})
	return intp
}

const replHelp = `states             list all states
state [n]          show state n (default: current state)
goto [n] X         follow the transition on symbol X
closure n          show the closure of the kernel of state n
enum [k]           list k derivable strings
rules              list the augmented grammar
quit               leave`

// Eval executes a single command line. It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	switch cmd, args := args[0], args[1:]; cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		pterm.Println(replHelp)
	case "states":
		for _, s := range intp.cfsm.States() {
			printState(intp.cfsm, s)
		}
	case "state":
		id, err := intp.stateArg(args, 0)
		if err != nil {
			return false, err
		}
		intp.current = id
		printState(intp.cfsm, intp.cfsm.State(id))
	case "goto":
		return false, intp.gotoCmd(args)
	case "closure":
		id, err := intp.stateArg(args, 1)
		if err != nil {
			return false, err
		}
		kernel := lr.NewItemSet(intp.cfsm.State(id).Items.Kernel(intp.cfsm.AugmentedStart())...)
		pterm.Println(lr.Closure(kernel, intp.cfsm.Productions()).String())
	case "enum":
		k := 10
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return false, fmt.Errorf("%w: enum [k]", errUsage)
			}
			k = n
		}
		e := enumerate.New(intp.g.Start, intp.g.Productions, enumerate.Limit(k))
		for s, ok := e.Next(); ok; s, ok = e.Next() {
			pterm.Println(s.String())
		}
	case "rules":
		for k, p := range intp.cfsm.Productions() {
			pterm.Printf("%3d  %s\n", k, p)
		}
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

// stateArg interprets args[0] as a state ID. If args is empty and required is 0,
// the current state is used.
func (intp *Intp) stateArg(args []string, required int) (int, error) {
	if len(args) < required {
		return 0, fmt.Errorf("%w: state ID missing", errUsage)
	}
	if len(args) == 0 {
		return intp.current, nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || intp.cfsm.State(id) == nil {
		return 0, fmt.Errorf("no state %q", args[0])
	}
	return id, nil
}

func (intp *Intp) gotoCmd(args []string) error {
	from := intp.current
	switch len(args) {
	case 1:
	case 2:
		id, err := intp.stateArg(args[:1], 1)
		if err != nil {
			return err
		}
		from, args = id, args[1:]
	default:
		return fmt.Errorf("%w: goto [n] X", errUsage)
	}
	A, ok := intp.symbols[args[0]]
	if !ok {
		return fmt.Errorf("%q is not a grammar symbol", args[0])
	}
	to, ok := intp.cfsm.Goto(from, A)
	if !ok {
		return fmt.Errorf("no transition from state %d on %s", from, A)
	}
	intp.current = to
	printState(intp.cfsm, intp.cfsm.State(to))
	return nil
}
