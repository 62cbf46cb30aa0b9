package push

// pushContext holds the per-row scratch state: flat settled-mass and residual
// arrays, the lists of nodes that received mass, and the frontier. Contexts
// are sized for one graph, pooled by the Engine, and arena-reused across rows:
// reset zeroes only the touched entries instead of the whole arrays.
type pushContext struct {
	p       []float64 // Settled mass, indexed by node id
	r       []float64 // Residual mass, indexed by node id
	settled []int32   // Nodes with p > 0, in first-settle order
	touched []int32   // Nodes whose residual went nonzero at some point
	fr      *frontier
}

func newPushContext(numNodes int) *pushContext {
	return &pushContext{
		p:       make([]float64, numNodes),
		r:       make([]float64, numNodes),
		settled: make([]int32, 0, 128),
		touched: make([]int32, 0, 128),
		fr:      newFrontier(numNodes),
	}
}

// reset clears the context for reuse.
func (pc *pushContext) reset() {
	for _, u := range pc.settled {
		pc.p[u] = 0
	}
	for _, u := range pc.touched {
		pc.r[u] = 0
	}

	pc.settled = pc.settled[:0]
	pc.touched = pc.touched[:0]
	pc.fr.reset()
}
