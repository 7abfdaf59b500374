package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// Dijkstra computes shortest road distances from Options.Source to every
// reachable city within Options.MaxDistance.
//
// Returns:
//
//   - dist: city → shortest distance; the source maps to 0 and unreachable
//     cities are absent.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest route to v arrives from u; the
//     source has no entry.
//   - err:  invalid input; nothing is reported on the map's Reporter.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. m must be non-nil (ErrNilMap).
//  3. m must contain Source (wraps core.ErrNotFound).
func Dijkstra(m *core.Map, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if m == nil {
		return nil, nil, ErrNilMap
	}
	src, ok := m.Lookup(cfg.Source)
	if !ok {
		return nil, nil, fmt.Errorf("dijkstra: source %q: %w", cfg.Source, core.ErrNotFound)
	}

	// 3) Run
	n := m.HandleBound()
	r := &runner{
		m:       m,
		max:     cfg.MaxDistance,
		dist:    make([]float64, n),
		prev:    make([]core.Handle, n),
		reached: make([]bool, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.run(src)

	// 4) Translate handles back to names.
	dist := make(map[string]float64)
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string)
	}
	for h, ok := range r.settled {
		if !ok {
			continue
		}
		v := core.Handle(h)
		dist[m.NameOf(v)] = r.dist[h]
		if prev != nil && v != src {
			prev[m.NameOf(v)] = m.NameOf(r.prev[h])
		}
	}

	return dist, prev, nil
}

// PathTo rebuilds the route from the source to target out of a
// predecessor map. It returns nil when target was not reached.
func PathTo(prev map[string]string, dist map[string]float64, target string) []string {
	if _, ok := dist[target]; !ok {
		return nil
	}
	path := []string{target}
	for v, ok := prev[target]; ok; v, ok = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *core.Map
	max     float64
	dist    []float64     // handle → best known distance
	prev    []core.Handle // handle → predecessor on the best known route
	reached []bool        // handle → dist is meaningful
	settled []bool        // handle → dist is final
	pq      nodePQ
}

// run is the main loop: pop the closest city, settle it, relax its roads.
// The loop stops early once the closest entry lies beyond max.
func (r *runner) run(src core.Handle) {
	r.reached[src] = true
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.settled[u] {
			continue
		}
		if item.dist > r.max {
			break
		}
		r.settled[u] = true

		for _, a := range r.m.Arcs(u) {
			v := a.To
			if r.settled[v] {
				continue
			}
			nd := r.dist[u] + a.Length
			if nd > r.max || (r.reached[v] && nd >= r.dist[v]) {
				continue
			}
			r.dist[v] = nd
			r.prev[v] = u
			r.reached[v] = true
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}
}

// nodeItem represents a city and its distance from the source at push time.
type nodeItem struct {
	id   core.Handle
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay
// in the heap and are skipped once their city is settled.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
