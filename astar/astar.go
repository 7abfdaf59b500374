package astar

import (
	"container/heap"
	"slices"

	"github.com/katalvlaran/citymap/core"
)

// opFindPath names the operation in returned *core.OpError values.
const opFindPath = "FindPath"

// FindPath returns a shortest route from source to target.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap; nothing is reported).
//  2. source must exist (core.ErrNotFound, "City: <source>").
//  3. target must exist (core.ErrNotFound, "City: <target>").
//
// If source == target the result is [source] with length 0. When the
// target is unreachable the diagnostic "Path: <source> - <target>" is
// reported and the returned error wraps ErrNoPath.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FindPath(m *core.Map, source, target string, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if m == nil {
		return Result{}, ErrNilMap
	}
	src, ok := m.Lookup(source)
	if !ok {
		return Result{}, core.Fail(m.Reporter(), opFindPath, core.ErrNotFound, missingCity(source))
	}
	dst, ok := m.Lookup(target)
	if !ok {
		return Result{}, core.Fail(m.Reporter(), opFindPath, core.ErrNotFound, missingCity(target))
	}

	// 3) Search
	r := newRunner(m, cfg, dst)
	if !r.run(src) {
		d := core.Diagnostic{
			Reason:      core.ReasonDoesntExist,
			SubjectType: core.SubjectPath,
			Subject:     core.PairSubject(source, target),
		}

		return Result{}, core.Fail(m.Reporter(), opFindPath, ErrNoPath, d)
	}

	return r.result(src), nil
}

// ShortestPath returns only the city sequence of FindPath.
func ShortestPath(m *core.Map, source, target string, opts ...Option) ([]string, error) {
	res, err := FindPath(m, source, target, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Distance returns only the total length of FindPath.
func Distance(m *core.Map, source, target string, opts ...Option) (float64, error) {
	res, err := FindPath(m, source, target, opts...)
	if err != nil {
		return 0, err
	}

	return res.Length, nil
}

func missingCity(name string) core.Diagnostic {
	return core.Diagnostic{Reason: core.ReasonDoesntExist, SubjectType: core.SubjectCity, Subject: name}
}

// nodeState tracks a city through the search.
type nodeState uint8

const (
	unseen nodeState = iota
	open
	closed
)

// runner holds the mutable state for a single query.
type runner struct {
	m        *core.Map
	policy   Policy
	goal     core.Handle
	goalPos  core.Position
	g        []float64     // handle → best known distance from source
	prev     []core.Handle // handle → predecessor on the best known route
	state    []nodeState   // handle → unseen/open/closed
	pq       frontier      // min-heap on f, FIFO among equals
	seq      uint64        // push counter for tie-breaking
	expanded int           // cities closed so far
}

func newRunner(m *core.Map, cfg Options, goal core.Handle) *runner {
	n := m.HandleBound()
	r := &runner{
		m:       m,
		policy:  cfg.Policy,
		goal:    goal,
		goalPos: m.PositionOf(goal),
		g:       make([]float64, n),
		prev:    make([]core.Handle, n),
		state:   make([]nodeState, n),
		pq:      make(frontier, 0, n),
	}
	for i := range r.prev {
		r.prev[i] = core.NoHandle
	}

	return r
}

// h is the straight-line distance to the goal.
func (r *runner) h(v core.Handle) float64 {
	return core.Distance(r.m.PositionOf(v), r.goalPos)
}

func (r *runner) push(v core.Handle) {
	heap.Push(&r.pq, &frontierItem{id: v, f: r.g[v] + r.h(v), seq: r.seq})
	r.seq++
}

// run executes the main loop and reports whether the goal was reached.
func (r *runner) run(src core.Handle) bool {
	r.g[src] = 0
	r.state[src] = open
	r.push(src)

	for r.pq.Len() > 0 {
		// 1) Pop the lowest-f entry; stale duplicates of closed cities are skipped.
		u := heap.Pop(&r.pq).(*frontierItem).id
		if r.state[u] == closed {
			continue
		}
		r.state[u] = closed
		r.expanded++

		// 2) Goal test on pop.
		if u == r.goal {
			return true
		}

		// 3) Open or relax every neighbor that is not closed.
		for _, a := range r.m.Arcs(u) {
			v := a.To
			if r.state[v] == closed {
				continue
			}
			ng := r.g[u] + a.Length
			if r.state[v] == open && (r.policy == PolicyFirstOpened || ng >= r.g[v]) {
				continue
			}
			r.g[v] = ng
			r.prev[v] = u
			r.state[v] = open
			r.push(v)
		}
	}

	return false
}

// result rebuilds the path by walking predecessors back from the goal.
func (r *runner) result(src core.Handle) Result {
	var hs []core.Handle
	for v := r.goal; v != core.NoHandle; v = r.prev[v] {
		hs = append(hs, v)
		if v == src {
			break
		}
	}
	slices.Reverse(hs)

	res := Result{
		Path:     make([]string, len(hs)),
		Length:   r.g[r.goal],
		Legs:     make([]float64, 0, len(hs)),
		Expanded: r.expanded,
	}
	for i, v := range hs {
		res.Path[i] = r.m.NameOf(v)
		if i > 0 {
			res.Legs = append(res.Legs, core.Distance(r.m.PositionOf(hs[i-1]), r.m.PositionOf(v)))
		}
	}

	return res
}

// frontierItem is one entry of the priority queue.
type frontierItem struct {
	id  core.Handle
	f   float64 // g + h at push time
	seq uint64  // push order
}

// frontier is a min-heap of *frontierItem ordered by f, then by push order.
// Under lazy decrease-key an outdated entry stays in the heap and is skipped
// when popped.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
