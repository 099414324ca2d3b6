package csp

type backtrackSolver struct{}

// NewBacktrackSolver returns the built-in backtracking solver. It interleaves
// unit propagation with depth-first search: variables are branched in
// increasing index order, true before false, so repeated runs on the same
// system produce the same assignment.
func NewBacktrackSolver() Solver {
	return &backtrackSolver{}
}

func (solver *backtrackSolver) Solve(system *System) (Assignment, error) {
	if err := checkSystem(system); err != nil {
		return nil, err
	}
	if len(system.Contradictions) > 0 { // Short-circuit structurally impossible systems
		return nil, nil
	}

	search := newSearch(system)
	if !search.seed() || !search.branch(0) {
		return nil, nil
	}
	return search.snapshot(), nil
}

type value int8

const (
	valueUnknown value = iota
	valueFalse
	valueTrue
)

// counter tracks the live state of one Exactly constraint: the trues still
// owed (budget) and the variables still unassigned (free).
type counter struct {
	set    []Var
	budget int
	free   int
}

// search owns all mutable solving state. Each Solve call builds its own, so
// concurrent calls never share anything.
type search struct {
	constraints []Constraint
	values      []value
	trail       []Var
	queue       []Var
	counters    []counter
	counterRefs [][]int // per variable, indices into counters
	partners    [][]Var // per variable, its NotBoth counterparts
	units       []Unit
}

func newSearch(system *System) *search {
	search := &search{
		constraints: system.Constraints,
		values:      make([]value, system.Variables),
		trail:       make([]Var, 0, system.Variables),
		counterRefs: make([][]int, system.Variables),
		partners:    make([][]Var, system.Variables),
	}

	for _, constraint := range system.Constraints {
		switch c := constraint.(type) {
		case Exactly:
			ref := len(search.counters)
			search.counters = append(search.counters, counter{set: c.Set, budget: c.N, free: len(c.Set)})
			for _, v := range c.Set {
				search.counterRefs[v] = append(search.counterRefs[v], ref)
			}
		case NotBoth:
			search.partners[c.A] = append(search.partners[c.A], c.B)
			search.partners[c.B] = append(search.partners[c.B], c.A)
		case Unit:
			search.units = append(search.units, c)
		}
	}
	return search
}

// seed applies every inference available before the first branch: pinned
// literals, then the counters that already force values on their own.
func (s *search) seed() bool {
	for _, unit := range s.units {
		pinned := valueFalse
		if unit.Value {
			pinned = valueTrue
		}
		if !s.assign(unit.V, pinned) {
			return false
		}
	}
	for ref := range s.counters {
		if !s.force(ref) {
			return false
		}
	}
	return s.propagate()
}

// assign records a value for v and keeps every affected counter in sync,
// reporting false on contradiction. Re-assigning an already decided variable
// succeeds only when the values agree. Every counter is updated even when a
// contradiction surfaces midway, so undoTo can always reverse the whole step.
func (s *search) assign(v Var, val value) bool {
	if current := s.values[v]; current != valueUnknown {
		return current == val
	}
	s.values[v] = val
	s.trail = append(s.trail, v)
	s.queue = append(s.queue, v)

	consistent := true
	for _, ref := range s.counterRefs[v] {
		c := &s.counters[ref]
		c.free--
		if val == valueTrue {
			c.budget--
		}
		if c.budget < 0 || c.budget > c.free {
			consistent = false
		}
	}
	return consistent
}

// propagate drains the queue, re-examining the constraints around every
// freshly assigned variable until fixpoint or contradiction.
func (s *search) propagate() bool {
	for len(s.queue) > 0 {
		v := s.queue[0]
		s.queue = s.queue[1:]

		if s.values[v] == valueTrue {
			for _, partner := range s.partners[v] {
				if !s.assign(partner, valueFalse) {
					return false
				}
			}
		}
		for _, ref := range s.counterRefs[v] {
			if !s.force(ref) {
				return false
			}
		}
	}
	return true
}

// force applies the cardinality inference rules to one counter: a spent
// budget excludes every remaining variable, a budget equal to the remaining
// variables requires all of them.
func (s *search) force(ref int) bool {
	c := &s.counters[ref]
	if c.budget < 0 || c.budget > c.free {
		return false
	}
	if c.budget == 0 {
		for _, v := range c.set {
			if s.values[v] == valueUnknown && !s.assign(v, valueFalse) {
				return false
			}
		}
	} else if c.budget == c.free {
		for _, v := range c.set {
			if s.values[v] == valueUnknown && !s.assign(v, valueTrue) {
				return false
			}
		}
	}
	return true
}

// branch runs the depth-first search over the variables at index from and
// beyond. Variables below from are guaranteed assigned by the caller.
func (s *search) branch(from int) bool {
	next := -1
	for i := from; i < len(s.values); i++ {
		if s.values[i] == valueUnknown {
			next = i
			break
		}
	}
	if next < 0 {
		return s.consistent()
	}

	for _, val := range []value{valueTrue, valueFalse} {
		mark := len(s.trail)
		if s.assign(Var(next), val) && s.propagate() && s.branch(next+1) {
			return true
		}
		s.undoTo(mark)
	}
	return false
}

// undoTo rewinds the trail to a previous length, restoring values and
// counters, and discards any inferences still queued.
func (s *search) undoTo(mark int) {
	for len(s.trail) > mark {
		v := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		for _, ref := range s.counterRefs[v] {
			c := &s.counters[ref]
			c.free++
			if s.values[v] == valueTrue {
				c.budget++
			}
		}
		s.values[v] = valueUnknown
	}
	s.queue = s.queue[:0]
}

// consistent re-evaluates every constraint once all variables are assigned.
// Propagation alone never proves the required trues were reached, so a full
// check guards the success path.
func (s *search) consistent() bool {
	assignment := s.snapshot()
	for _, constraint := range s.constraints {
		if !constraint.Satisfied(assignment) {
			return false
		}
	}
	return true
}

func (s *search) snapshot() Assignment {
	assignment := make(Assignment, len(s.values))
	for v, val := range s.values {
		assignment[v] = val == valueTrue
	}
	return assignment
}
