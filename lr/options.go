package lr

// Option configures the construction of a CFSM.
type Option func(c *config)

type config struct {
	stateLimit int // 0 = unlimited
	workers    int // goroutines computing goto sets of a state
}

func defaultConfig() config {
	return config{workers: 1}
}

// StateLimit sets an upper bound for the number of CFSM states. BuildCFSM fails
// with ErrStateLimit if the bound would be exceeded. n ≤ 0 means unlimited.
func StateLimit(n int) Option {
	return func(c *config) {
		c.stateLimit = n
	}
}

// Workers sets the number of goroutines computing the goto sets for the
// transition candidates of a single state. Results are merged into the state table
// by the building goroutine only, so state IDs do not depend on the number of
// workers.
func Workers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}
