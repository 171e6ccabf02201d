package grammar

import "fmt"

// Issue is a finding of Validate.
type Issue struct {
	Production int    // index of the offending production, -1 if not production specific
	Symbol     Symbol // symbol the issue is about
	Message    string
}

func (i Issue) String() string {
	if i.Production < 0 {
		return fmt.Sprintf("%s: %s", i.Symbol, i.Message)
	}
	return fmt.Sprintf("rule %d: %s: %s", i.Production, i.Symbol, i.Message)
}

// Validate checks g for structural problems: terminal heads, variables which are
// never a head, and a start symbol without rules. The LR construction in package lr
// does not depend on it; malformed grammars there just yield fewer transitions.
func Validate(g *Grammar) []Issue {
	var issues []Issue
	heads := NewSymbolSet()
	for i, p := range g.Productions {
		if p.Head.IsTerminal() {
			issues = append(issues, Issue{i, p.Head, "head of rule is a terminal"})
		}
		heads.Add(p.Head)
	}
	if !heads.Contains(g.Start) {
		issues = append(issues, Issue{-1, g.Start, "start symbol has no rules"})
	}
	reported := NewSymbolSet()
	for i, p := range g.Productions {
		for _, A := range p.Body {
			if A.IsVariable() && !heads.Contains(A) && !reported.Contains(A) {
				issues = append(issues, Issue{i, A, "variable is never a head of a rule"})
				reported.Add(A)
			}
		}
	}
	for _, issue := range issues {
		tracer().Infof("grammar %s: %s", g.Name, issue)
	}
	return issues
}
