// Package push implements the local push computation for approximate
// Personalized PageRank (Andersen-Chung-Lang style).
//
// An Engine is bound to one graph and keeps a pool of pre-allocated push
// contexts, so running many rows over the same graph allocates only the
// returned vectors. Engines are safe for concurrent use; each concurrent
// Push draws its own context from the pool.
package push

import (
	"sync"

	"github.com/hupe1980/pushrank/csr"
)

// Vector is a sparse PPR vector: parallel column/value slices, in the order
// nodes were first settled. Nodes never touched by the computation are
// implicitly zero and omitted.
type Vector struct {
	Cols []int32
	Vals []float64
}

// Engine computes epsilon-approximate PPR vectors over a fixed graph.
type Engine struct {
	graph *csr.Graph
	pool  sync.Pool
}

// NewEngine creates an Engine for g.
func NewEngine(g *csr.Graph) *Engine {
	e := &Engine{graph: g}
	e.pool.New = func() any {
		return newPushContext(g.NumNodes())
	}

	return e
}

// Push computes an approximate PPR vector for the given seeds with restart
// probability alpha and tolerance epsilon.
//
// A single-element slice yields per-node PPR. A longer slice yields the
// class-aggregated variant: every seed starts with residual alpha and the
// frontier starts with the whole set, producing one vector for the combined
// mass of the set. An empty slice yields an empty vector.
//
// The result satisfies |p(v) - ppr(v)| <= epsilon*degree(v) for every node v.
// For identical inputs the returned vector is identical regardless of how
// many other Push calls run concurrently.
func (e *Engine) Push(seeds []int32, alpha, epsilon float64) Vector {
	return e.push(seeds, alpha, epsilon, nil)
}

// push runs the local push loop. observe, when non-nil, is invoked with the
// full p and r arrays after every settle-and-redistribute step; it exists for
// in-package invariant tests and must not retain the slices.
func (e *Engine) push(seeds []int32, alpha, epsilon float64, observe func(p, r []float64)) Vector {
	pc := e.pool.Get().(*pushContext)
	defer func() {
		pc.reset()
		e.pool.Put(pc)
	}()

	g := e.graph
	deg := g.Degrees()
	alphaEps := alpha * epsilon

	for _, s := range seeds {
		if pc.r[s] == 0 {
			pc.touched = append(pc.touched, s)
		}
		pc.r[s] = alpha // Duplicate seeds collapse, matching set semantics
		pc.fr.push(s)
	}

	for !pc.fr.empty() {
		u, _ := pc.fr.pop()

		res := pc.r[u]
		if pc.p[u] == 0 {
			pc.settled = append(pc.settled, u)
		}
		pc.p[u] += res
		pc.r[u] = 0

		// Degree-0 nodes settle their residual and forward nothing. The
		// val > 0 guard also covers alpha = 1, where no mass ever leaves
		// the seed.
		if deg[u] > 0 {
			if val := (1 - alpha) * res / deg[u]; val > 0 {
				for _, v := range g.Neighbors(u) {
					if pc.r[v] == 0 {
						pc.touched = append(pc.touched, v)
					}
					pc.r[v] += val

					if pc.r[v] >= alphaEps*deg[v] {
						pc.fr.push(v)
					}
				}
			}
		}

		if observe != nil {
			observe(pc.p, pc.r)
		}
	}

	out := Vector{
		Cols: make([]int32, len(pc.settled)),
		Vals: make([]float64, len(pc.settled)),
	}
	for i, u := range pc.settled {
		out.Cols[i] = u
		out.Vals[i] = pc.p[u]
	}

	return out
}
