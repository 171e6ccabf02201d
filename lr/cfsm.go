package lr

import (
	"errors"
	"fmt"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/SungMinCho/Grammar/lr/sparse"
	"github.com/emirpasic/gods/lists/arraylist"
	"golang.org/x/sync/errgroup"
)

// Errors returned by BuildCFSM.
var (
	// ErrStartSymbolCollision signals that no fresh name for the augmented start
	// symbol could be found.
	ErrStartSymbolCollision = errors.New("cannot create a unique augmented start symbol")
	// ErrNotAVariable signals a start symbol which is a terminal.
	ErrNotAVariable = errors.New("start symbol must be a variable")
	// ErrStateLimit signals that the CFSM grew beyond a configured number of states.
	ErrStateLimit = errors.New("CFSM state limit exceeded")
)

// === CFSM Construction =====================================================

type stateStatus int8

const (
	unvisited stateStatus = iota
	queued
	processed
)

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int      // serial ID of this state, 0 for the start state
	Items  *ItemSet // configuration items within this state
	Accept bool     // does this state contain the completed augmented start rule?
	status stateStatus
	hash   string
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.Items.Size())
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	s.Items.Dump()
	tracer().Debugf("-------------------------")
}

// Edge is a transition of the CFSM, directed and labeled with a grammar symbol.
type Edge struct {
	From  int
	Label grammar.Symbol
	To    int
}

func (e Edge) String() string {
	return fmt.Sprintf("%d --%s--> %d", e.From, e.Label, e.To)
}

// CFSM is the characteristic finite state machine for a grammar, i.e. the
// LR(0) state diagram. It is constructed by BuildCFSM and is read-only afterwards.
type CFSM struct {
	S0      *CFSMState           // start state
	start   grammar.Symbol       // augmented start symbol S'
	rules   []grammar.Production // augmented grammar, S' -> S first
	states  []*CFSMState         // indexed by state ID
	edges   *arraylist.List      // all edges between states, in discovery order
	symbols []grammar.Symbol     // transition labels = matrix columns
	gotos   *sparse.IntMatrix    // (state, symbol column) -> state
}

// AugmentedStart returns the synthesized start symbol S'.
func (c *CFSM) AugmentedStart() grammar.Symbol {
	return c.start
}

// Productions returns the augmented grammar the CFSM has been built for.
// The augmented start rule is the first production.
func (c *CFSM) Productions() []grammar.Production {
	return append([]grammar.Production(nil), c.rules...)
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return len(c.states)
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	return append([]*CFSMState(nil), c.states...)
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	if id < 0 || id >= len(c.states) {
		return nil
	}
	return c.states[id]
}

// Edges returns all transitions, in order of discovery.
func (c *CFSM) Edges() []Edge {
	edges := make([]Edge, 0, c.edges.Size())
	it := c.edges.Iterator()
	for it.Next() {
		edges = append(edges, it.Value().(Edge))
	}
	return edges
}

// Goto returns the target state of the transition from state id on symbol A.
func (c *CFSM) Goto(id int, A grammar.Symbol) (int, bool) {
	col := c.column(A)
	if col < 0 || id < 0 || id >= c.gotos.M() {
		return -1, false
	}
	to := c.gotos.Value(id, col)
	if to == c.gotos.NullValue() {
		return -1, false
	}
	return int(to), true
}

// Transitions calls f for every outgoing transition of state id.
func (c *CFSM) Transitions(id int, f func(A grammar.Symbol, to int)) {
	if id < 0 || id >= c.gotos.M() {
		return
	}
	c.gotos.Row(id, func(col int, to int32) {
		f(c.symbols[col], int(to))
	})
}

// Accepting returns the IDs of all states containing the completed augmented start rule.
func (c *CFSM) Accepting() []int {
	var acc []int
	for _, s := range c.states {
		if s.Accept {
			acc = append(acc, s.ID)
		}
	}
	return acc
}

// Dump is a debugging helper.
func (c *CFSM) Dump() {
	for _, s := range c.states {
		s.Dump()
	}
	for _, e := range c.Edges() {
		tracer().Debugf("%s", e)
	}
}

func (c *CFSM) column(A grammar.Symbol) int {
	for col, B := range c.symbols {
		if A == B {
			return col
		}
	}
	return -1
}

// --- Builder ---------------------------------------------------------------

// cfsmBuilder owns all the mutable state of a single construction run.
type cfsmBuilder struct {
	config
	cfsm     *CFSM
	index    map[string][]*CFSMState // item set hash -> states
	worklist *arraylist.List         // queued states, FIFO
}

// BuildCFSM constructs the characteristic finite state machine for the grammar
// given by a start symbol and a list of productions.
//
// The grammar is augmented with a rule S' -> S, where S' is a fresh variable.
// State 0 is the closure of { S' -> . S }. States are numbered in breadth first
// discovery order. Each set of items is represented by exactly one state.
//
// BuildCFSM does not validate the grammar. Rules for terminals or variables
// without rules just lead to fewer transitions.
func BuildCFSM(start grammar.Symbol, prods []grammar.Production, opts ...Option) (*CFSM, error) {
	tracer().Debugf("=== build CFSM ==================================================")
	if !start.IsVariable() {
		return nil, fmt.Errorf("%w: %s", ErrNotAVariable, start)
	}
	S, err := augmentedStartSymbol(start, grammar.GrammarSymbols(prods))
	if err != nil {
		return nil, err
	}
	rules := make([]grammar.Production, 0, len(prods)+1)
	rules = append(rules, grammar.Rule(S, start))
	rules = append(rules, prods...)
	b := &cfsmBuilder{
		config: defaultConfig(),
		cfsm: &CFSM{
			start:   S,
			rules:   rules,
			edges:   arraylist.New(),
			symbols: grammar.GrammarSymbols(rules).Values(),
		},
		index:    make(map[string][]*CFSMState),
		worklist: arraylist.New(),
	}
	for _, opt := range opts {
		opt(&b.config)
	}
	if err := b.run(); err != nil {
		return nil, err
	}
	b.buildGotoTable()
	tracer().Infof("CFSM for start symbol %s has %d states and %d edges",
		start, b.cfsm.Size(), b.cfsm.edges.Size())
	return b.cfsm, nil
}

// augmentedStartSymbol derives S' from S. If S' is taken, S'' is tried; if this is
// taken as well, the grammar is rejected.
func augmentedStartSymbol(start grammar.Symbol, symbols *grammar.SymbolSet) (grammar.Symbol, error) {
	name := start.Name + "'"
	if symbols.ContainsName(name) {
		fallback := name + "'"
		if symbols.ContainsName(fallback) {
			return grammar.Symbol{}, fmt.Errorf("%w: %q and %q are grammar symbols",
				ErrStartSymbolCollision, name, fallback)
		}
		name = fallback
	}
	return grammar.N(name), nil
}

func (b *cfsmBuilder) run() error {
	c := b.cfsm
	closure0 := Closure(NewItemSet(StartItem(c.rules[0])), c.rules)
	c.S0 = b.addState(closure0)
	c.S0.Dump()
	for !b.worklist.Empty() {
		x, _ := b.worklist.Get(0)
		b.worklist.Remove(0)
		s := x.(*CFSMState)
		s.status = processed
		gotosets, err := b.gotoSets(s)
		if err != nil {
			return err
		}
		for k, A := range c.symbols {
			G := gotosets[k]
			if G.Empty() {
				continue // no transition on A
			}
			tracer().Debugf("goto(%d) --%s--> %s", s.ID, A, G)
			target := b.findStateByItems(G)
			if target == nil {
				if b.stateLimit > 0 && len(c.states) >= b.stateLimit {
					return fmt.Errorf("%w: more than %d states", ErrStateLimit, b.stateLimit)
				}
				target = b.addState(G)
				target.Dump()
			}
			b.addEdge(s, target, A)
		}
	}
	return nil
}

// gotoSets computes goto(s, A) for every transition candidate A, in symbol order.
// With more than one worker, the goto sets are computed concurrently. Workers
// neither trace nor touch the builder; merging the results into the state table
// is left to the caller.
func (b *cfsmBuilder) gotoSets(s *CFSMState) ([]*ItemSet, error) {
	c := b.cfsm
	gotosets := make([]*ItemSet, len(c.symbols))
	if b.workers <= 1 {
		for k, A := range c.symbols {
			gotosets[k] = gotoSet(s.Items, A, c.rules)
		}
		return gotosets, nil
	}
	var group errgroup.Group
	group.SetLimit(b.workers)
	for k, A := range c.symbols {
		k, A := k, A
		group.Go(func() error {
			gotosets[k] = gotoSet(s.Items, A, c.rules)
			return nil
		})
	}
	return gotosets, group.Wait()
}

// Add a state to the CFSM and put it on the worklist.
func (b *cfsmBuilder) addState(iset *ItemSet) *CFSMState {
	c := b.cfsm
	s := &CFSMState{
		ID:    len(c.states),
		Items: iset,
		hash:  iset.Hash(),
	}
	s.Accept = b.containsCompletedStartRule(iset)
	c.states = append(c.states, s)
	b.index[s.hash] = append(b.index[s.hash], s)
	s.status = queued
	b.worklist.Add(s)
	return s
}

// Find a CFSM state by the contained item set. Processed states take precedence
// over states still waiting on the worklist.
func (b *cfsmBuilder) findStateByItems(iset *ItemSet) *CFSMState {
	candidates := b.index[iset.Hash()]
	for _, status := range []stateStatus{processed, queued} {
		for _, s := range candidates {
			if s.status == status && s.Items.Equals(iset) {
				return s
			}
		}
	}
	return nil
}

func (b *cfsmBuilder) addEdge(from, to *CFSMState, A grammar.Symbol) {
	e := Edge{From: from.ID, Label: A, To: to.ID}
	tracer().Debugf("edge %s", e)
	b.cfsm.edges.Add(e)
}

func (b *cfsmBuilder) containsCompletedStartRule(iset *ItemSet) bool {
	for _, i := range iset.Items() {
		if i.Head == b.cfsm.start && i.Complete() {
			return true
		}
	}
	return false
}

func (b *cfsmBuilder) buildGotoTable() {
	c := b.cfsm
	c.gotos = sparse.NewIntMatrix(len(c.states), len(c.symbols), sparse.DefaultNullValue)
	it := c.edges.Iterator()
	for it.Next() {
		e := it.Value().(Edge)
		c.gotos.Set(e.From, c.column(e.Label), int32(e.To))
	}
}
