package lr

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/SungMinCho/Grammar/grammarfile"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/tools/txtar"
)

// A fixture holds a grammar and the states, edges and accepting states of its
// CFSM, one per line.
type fixture struct {
	name    string
	g       *grammar.Grammar
	states  []string
	edges   []string
	accept  []string
	comment string
}

func loadFixtures(t *testing.T) []fixture {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test fixtures found")
	}
	var fixtures []fixture
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatal(err)
		}
		fx := fixture{name: filepath.Base(file), comment: strings.TrimSpace(string(ar.Comment))}
		for _, f := range ar.Files {
			switch f.Name {
			case "grammar":
				if fx.g, err = grammarfile.ParseString(fx.name, string(f.Data)); err != nil {
					t.Fatalf("%s: %v", fx.name, err)
				}
			case "states":
				fx.states = lines(f.Data)
			case "edges":
				fx.edges = lines(f.Data)
			case "accept":
				fx.accept = lines(f.Data)
			}
		}
		fixtures = append(fixtures, fx)
	}
	return fixtures
}

func lines(data []byte) []string {
	var l []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			l = append(l, line)
		}
	}
	return l
}

func TestCFSMFixtures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	for _, fx := range loadFixtures(t) {
		t.Logf("%s: %s", fx.name, fx.comment)
		cfsm, err := BuildCFSM(fx.g.Start, fx.g.Productions)
		if err != nil {
			t.Fatalf("%s: %v", fx.name, err)
		}
		checkLines(t, fx.name+" states", fx.states, stateLines(cfsm))
		var edges []string
		for _, e := range cfsm.Edges() {
			edges = append(edges, e.String())
		}
		checkLines(t, fx.name+" edges", fx.edges, edges)
		var accept []string
		for _, id := range cfsm.Accepting() {
			accept = append(accept, strconv.Itoa(id))
		}
		checkLines(t, fx.name+" accepting states", fx.accept, accept)
	}
}

func stateLines(cfsm *CFSM) []string {
	var states []string
	for _, s := range cfsm.States() {
		states = append(states, fmt.Sprintf("%d %s", s.ID, s.Items))
	}
	return states
}

func checkLines(t *testing.T, what string, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("%s: expected %d lines, have %d:\n%s", what, len(expected), len(actual),
			strings.Join(actual, "\n"))
		return
	}
	for k := range expected {
		if expected[k] != actual[k] {
			t.Errorf("%s: expected %q, have %q", what, expected[k], actual[k])
		}
	}
}

func buildExpr(t *testing.T, opts ...Option) *CFSM {
	cfsm, err := BuildCFSM(tE, exprRules(), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return cfsm
}

func TestCFSMStartState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	cfsm := buildExpr(t)
	if cfsm.AugmentedStart() != grammar.N("E'") {
		t.Errorf("Expected augmented start symbol E', is %v", cfsm.AugmentedStart())
	}
	if cfsm.S0 != cfsm.State(0) || cfsm.S0.ID != 0 {
		t.Errorf("Expected start state to have ID 0")
	}
	if !cfsm.S0.Items.Contains(Item{Head: grammar.N("E'"), Body: grammar.Syms(tE), Dot: 0}) {
		t.Errorf("Expected start state to contain E' -> . E, is %v", cfsm.S0.Items)
	}
	prods := cfsm.Productions()
	if len(prods) != 4 || !prods[0].Equals(grammar.Rule(grammar.N("E'"), tE)) {
		t.Errorf("Expected augmented grammar with E' -> E first, have %v", prods)
	}
	if cfsm.State(-1) != nil || cfsm.State(cfsm.Size()) != nil {
		t.Errorf("Expected nil for state IDs out of range")
	}
}

func TestCFSMUniqueStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	for _, fx := range loadFixtures(t) {
		cfsm, err := BuildCFSM(fx.g.Start, fx.g.Productions)
		if err != nil {
			t.Fatal(err)
		}
		states := cfsm.States()
		for i, s := range states {
			if s.ID != i {
				t.Errorf("%s: expected state #%d to have ID %d, has %d", fx.name, i, i, s.ID)
			}
			for _, r := range states[i+1:] {
				if s.Items.Equals(r.Items) {
					t.Errorf("%s: states %d and %d have equal item sets", fx.name, s.ID, r.ID)
				}
			}
		}
		for _, e := range cfsm.Edges() {
			G := Goto(cfsm.State(e.From).Items, e.Label, cfsm.Productions())
			if !G.Equals(cfsm.State(e.To).Items) {
				t.Errorf("%s: edge %v does not match goto set %v", fx.name, e, G)
			}
		}
	}
}

func TestCFSMGotoLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	cfsm := buildExpr(t)
	if to, ok := cfsm.Goto(4, tInt); !ok || to != 1 {
		t.Errorf("Expected goto(4, int) = 1, is %d", to)
	}
	if to, ok := cfsm.Goto(0, tPlus); ok {
		t.Errorf("Expected no transition on + from state 0, have %d", to)
	}
	if _, ok := cfsm.Goto(0, grammar.T("none")); ok {
		t.Errorf("Expected no transition on unknown symbol")
	}
	if _, ok := cfsm.Goto(17, tInt); ok {
		t.Errorf("Expected no transition from unknown state")
	}
	var labels []string
	cfsm.Transitions(4, func(A grammar.Symbol, to int) {
		labels = append(labels, fmt.Sprintf("%s:%d", A, to))
	})
	if strings.Join(labels, " ") != "int:1 E:5 T:3" {
		t.Errorf("Unexpected transitions for state 4: %v", labels)
	}
}

func TestCFSMDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	for _, fx := range loadFixtures(t) {
		c1, err := BuildCFSM(fx.g.Start, fx.g.Productions)
		if err != nil {
			t.Fatal(err)
		}
		for _, workers := range []int{1, 4} {
			c2, err := BuildCFSM(fx.g.Start, fx.g.Productions, Workers(workers))
			if err != nil {
				t.Fatal(err)
			}
			checkLines(t, fmt.Sprintf("%s with %d workers", fx.name, workers), stateLines(c1), stateLines(c2))
			if len(c1.Edges()) != len(c2.Edges()) {
				t.Errorf("%s: edge count differs with %d workers", fx.name, workers)
			}
		}
	}
}

func TestCFSMStateLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	if _, err := BuildCFSM(tE, exprRules(), StateLimit(3)); !errors.Is(err, ErrStateLimit) {
		t.Errorf("Expected state limit error, got %v", err)
	}
	if cfsm := buildExpr(t, StateLimit(6)); cfsm.Size() != 6 {
		t.Errorf("Expected 6 states, have %d", cfsm.Size())
	}
}

func TestCFSMErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	if _, err := BuildCFSM(tInt, exprRules()); !errors.Is(err, ErrNotAVariable) {
		t.Errorf("Expected error for terminal start symbol, got %v", err)
	}
	S, S1, S2 := grammar.N("S"), grammar.N("S'"), grammar.N("S''")
	rules := []grammar.Production{
		grammar.Rule(S, S1, S2),
		grammar.Rule(S1, grammar.T("a")),
		grammar.Rule(S2, grammar.T("b")),
	}
	if _, err := BuildCFSM(S, rules); !errors.Is(err, ErrStartSymbolCollision) {
		t.Errorf("Expected start symbol collision, got %v", err)
	}
}

func TestCFSMWithoutRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	cfsm, err := BuildCFSM(grammar.N("S"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfsm.Size() != 2 || len(cfsm.Accepting()) != 1 {
		t.Errorf("Expected 2 states, one accepting, have %d states", cfsm.Size())
	}
}

func TestCFSMToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	cfsm := buildExpr(t)
	var out strings.Builder
	if err := cfsm.ToGraphViz(&out); err != nil {
		t.Fatal(err)
	}
	dot := out.String()
	for _, frag := range []string{
		"digraph {",
		`s000 [fillcolor=white label="{000 | E' -\> . E\lE -\> . T\lE -\> . T + E\lT -\> . int\l}"]`,
		"s002 [fillcolor=lightgray",
		`s003 -> s004 [label="+"]`,
		`s004 -> s001 [label="int"]`,
	} {
		if !strings.Contains(dot, frag) {
			t.Errorf("Expected dot output to contain %q", frag)
		}
	}
	if strings.Count(dot, " -> s") != 7 {
		t.Errorf("Expected 7 edges in dot output:\n%s", dot)
	}
}

func TestCFSMReusesQueuedState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	g, err := grammarfile.ParseString("pending", "S : a A | b A ; A : c ;")
	if err != nil {
		t.Fatal(err)
	}
	cfsm, err := BuildCFSM(g.Start, g.Productions)
	if err != nil {
		t.Fatal(err)
	}
	if cfsm.Size() != 7 {
		t.Fatalf("Expected 7 states, have %d", cfsm.Size())
	}
	// state 4 is discovered from state 1 and not yet processed when state 2 is
	c := grammar.T("c")
	for _, from := range []int{1, 2} {
		if to, ok := cfsm.Goto(from, c); !ok || to != 4 {
			t.Errorf("Expected goto(%d, c) = 4, is %d", from, to)
		}
	}
	var into4 int
	for _, e := range cfsm.Edges() {
		if e.To == 4 {
			into4++
		}
	}
	if into4 != 2 {
		t.Errorf("Expected 2 edges into state 4, have %d", into4)
	}
}

// Exprs with precedence levels produce enough states for several workers to
// compute goto sets of one state at the same time. Run with -race.
func TestCFSMParallelGotoSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	g, err := grammarfile.ParseString("exprs", `
		Expr   : Expr SumOp Term | Term ;
		Term   : Term ProdOp Factor | Factor ;
		Factor : number | '(' Expr ')' ;
		SumOp  : '+' | '-' ;
		ProdOp : '*' | '/' ;
	`)
	if err != nil {
		t.Fatal(err)
	}
	serial, err := BuildCFSM(g.Start, g.Productions)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := BuildCFSM(g.Start, g.Productions, Workers(8))
	if err != nil {
		t.Fatal(err)
	}
	checkLines(t, "parallel build", stateLines(serial), stateLines(parallel))
	for _, s := range parallel.States() {
		parallel.Transitions(s.ID, func(A grammar.Symbol, to int) {
			G := Goto(s.Items, A, parallel.Productions())
			if !G.Equals(parallel.State(to).Items) {
				t.Errorf("Expected goto(%d, %s) to be state %d", s.ID, A, to)
			}
		})
	}
	called := false
	parallel.Transitions(parallel.Size(), func(grammar.Symbol, int) { called = true })
	if called {
		t.Errorf("Expected no transitions for unknown state")
	}
}
