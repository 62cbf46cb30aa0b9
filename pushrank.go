package pushrank

import (
	"context"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pushrank/csr"
	"github.com/hupe1980/pushrank/push"
	"github.com/hupe1980/pushrank/sparse"
)

// TopKMatrix computes one approximate PPR row per seed node and assembles the
// truncated rows into a sparse matrix of shape (len(seeds), g.NumNodes()),
// rescaled per the configured normalization.
func TopKMatrix(ctx context.Context, g *csr.Graph, seeds []int32, optFns ...func(o *Options)) (*sparse.Matrix, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	for i, s := range seeds {
		if s < 0 || int(s) >= g.NumNodes() {
			return nil, &ErrSeedOutOfRange{Position: i, Seed: s, NumNodes: g.NumNodes()}
		}
	}

	seedSets := make([][]int32, len(seeds))
	for i := range seeds {
		seedSets[i] = seeds[i : i+1 : i+1]
	}

	rows, err := pushRows(ctx, g, seedSets, opts)
	if err != nil {
		return nil, err
	}

	m := sparse.FromRows(rows, g.NumNodes())
	if err := m.Normalize(opts.Normalization, g.Degrees(), seeds); err != nil {
		return nil, err
	}

	return m, nil
}

// TopKClassMatrix computes one class-aggregated PPR row per label and returns
// a matrix of shape (max(labels)+1, g.NumNodes()). labels holds one class id
// per node; negative labels mark unlabeled nodes and are skipped. A class
// with no members produces an all-zero row.
//
// Sym and col normalization rescale by the seed node's degree, which has no
// counterpart for a seed set, so only row normalization is accepted.
func TopKClassMatrix(ctx context.Context, g *csr.Graph, labels []int32, optFns ...func(o *Options)) (*sparse.Matrix, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Normalization != sparse.NormalizationRow {
		return nil, ErrClassNormalization
	}

	buckets := classBuckets(labels)

	seedSets := make([][]int32, len(buckets))
	for i, b := range buckets {
		set := make([]int32, 0, b.GetCardinality())
		for it := b.Iterator(); it.HasNext(); {
			set = append(set, int32(it.Next()))
		}
		seedSets[i] = set
	}

	rows, err := pushRows(ctx, g, seedSets, opts)
	if err != nil {
		return nil, err
	}

	return sparse.FromRows(rows, g.NumNodes()), nil
}

// classBuckets groups node ids by label in a single pass, one roaring bitmap
// per class. Class count is max(label)+1.
func classBuckets(labels []int32) []*roaring.Bitmap {
	var numClasses int32
	for _, l := range labels {
		if l+1 > numClasses {
			numClasses = l + 1
		}
	}

	buckets := make([]*roaring.Bitmap, numClasses)
	for i := range buckets {
		buckets[i] = roaring.New()
	}
	for i, l := range labels {
		if l >= 0 {
			buckets[l].Add(uint32(i))
		}
	}

	return buckets
}

// pushRows fans the push engine out over independent seed sets. Each task
// writes exclusively to its own row slot, so no synchronization is needed
// beyond the group wait. A panic inside one row nulls only that row.
func pushRows(ctx context.Context, g *csr.Graph, seedSets [][]int32, opts Options) ([]sparse.Row, error) {
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	eng := push.NewEngine(g)
	rows := make([]sparse.Row, len(seedSets))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(parallelism)

	for i := range seedSets {
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			defer func() {
				if rec := recover(); rec != nil {
					rows[i] = sparse.Row{}
				}
			}()

			v := eng.Push(seedSets[i], opts.Alpha, opts.Epsilon)
			rows[i] = sparse.Row{Cols: v.Cols, Vals: v.Vals}.TopK(opts.TopK)

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
