package main

import (
	"fmt"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/SungMinCho/Grammar/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "states <grammar file>",
		Short:   "List the states and transitions of the CFSM",
		Example: `  lr0 states expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runStates,
	}
	rootCmd.AddCommand(cmd)
}

func runStates(cmd *cobra.Command, args []string) error {
	_, cfsm, err := buildCFSM(args[0])
	if err != nil {
		return err
	}
	pterm.Info.Printf("%d states, %d transitions\n", cfsm.Size(), len(cfsm.Edges()))
	for _, s := range cfsm.States() {
		printState(cfsm, s)
	}
	return nil
}

// printState renders a state as a tree, with its items and outgoing
// transitions as children.
func printState(cfsm *lr.CFSM, s *lr.CFSMState) {
	title := fmt.Sprintf("state %d", s.ID)
	if s.Accept {
		title += " (accept)"
	}
	ll := pterm.LeveledList{{Level: 0, Text: title}}
	for _, i := range s.Items.Items() {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: i.String()})
	}
	cfsm.Transitions(s.ID, func(A grammar.Symbol, to int) {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("--%s--> %d", A, to),
		})
	})
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}
