package fedskew

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/fedskew/dataset"
	"github.com/hupe1980/fedskew/internal/kmeans"
	"github.com/hupe1980/fedskew/internal/silhouette"
	"github.com/hupe1980/fedskew/partition"
)

// Split is the result of distributing a dataset across simulated clients.
type Split struct {
	// K is the cluster count the split was built from.
	K int

	// Seed is the clustering seed used for this split.
	Seed int64

	// Features are the columns the feature space was built from.
	Features []string

	// Clients holds one dataset per client, indexed by client id. Empty
	// clients hold a zero-row dataset with the full schema.
	Clients []*dataset.Dataset

	// Partition exposes the underlying cluster and row bookkeeping.
	Partition *partition.Partition
}

// NumClients returns the number of clients in the split.
func (s *Split) NumClients() int {
	return len(s.Clients)
}

// Client returns the dataset held by the given client.
func (s *Split) Client(id int) *dataset.Dataset {
	return s.Clients[id]
}

// FindOptimalK picks the cluster count in [2, maxK] that maximizes the mean
// silhouette score of a seeded clustering over the selected feature columns.
// Ties keep the lowest k. The search is deterministic: identical inputs with
// the same seed always return the same k.
//
// Candidates whose partition cannot be scored (fewer than 2 non-empty
// clusters) are skipped; if every candidate is skipped, ErrNoValidClustering
// is returned.
func FindOptimalK(ctx context.Context, ds *dataset.Dataset, features []string, optFns ...Option) (int, error) {
	o := applyOptions(optFns)

	m, err := ds.Select(features)
	if err != nil {
		return 0, translateError(err)
	}

	k, _, err := findOptimalK(ctx, m, &o)
	return k, err
}

func findOptimalK(ctx context.Context, m *dataset.Matrix, o *options) (int, float64, error) {
	if o.maxK < 2 {
		return 0, 0, fmt.Errorf("%w: got maxK=%d", ErrInvalidMaxK, o.maxK)
	}
	if m.Rows < 3 || m.Rows < o.maxK+1 {
		return 0, 0, fmt.Errorf("%w: maxK=%d needs more than %d rows, got %d", ErrInvalidMaxK, o.maxK, o.maxK, m.Rows)
	}

	bestK := 0
	bestScore := 0.0

	for k := 2; k <= o.maxK; k++ {
		res, err := kmeans.Fit(ctx, m.Data, m.Dim, k, o.metric, o.maxIterations, o.seed)
		if err != nil {
			if ctx.Err() != nil {
				return 0, 0, err
			}
			if errors.Is(err, kmeans.ErrTooFewVectors) {
				o.logger.WithK(k).LogCandidateSkipped(ctx, err)
				continue
			}
			return 0, 0, err
		}

		score, err := silhouette.Score(m.Data, m.Dim, k, res.Assignments, o.metric)
		if err != nil {
			if errors.Is(err, silhouette.ErrDegenerate) {
				o.logger.WithK(k).LogCandidateSkipped(ctx, err)
				continue
			}
			return 0, 0, err
		}

		// Strictly greater, so the lowest k wins ties.
		if bestK == 0 || score > bestScore {
			bestK = k
			bestScore = score
		}
	}

	if bestK == 0 {
		o.logger.LogOptimalK(ctx, 0, o.maxK, 0, ErrNoValidClustering)
		return 0, 0, ErrNoValidClustering
	}

	o.logger.LogOptimalK(ctx, bestK, o.maxK, bestScore, nil)
	return bestK, bestScore, nil
}

// Distribute partitions ds across numClients simulated clients with SFDL
// (Same Features, Different Label) skew: rows are clustered in feature
// space, and whole clusters are routed to clients in contiguous blocks, so
// each client's label mix is shaped by its clusters rather than by uniform
// random sampling.
//
// The cluster count is pinned with WithK, or resolved via FindOptimalK with
// the configured maxK when absent. Every row of ds lands in exactly one
// client's dataset; when numClients exceeds the cluster count the trailing
// clients receive empty datasets with the full schema.
func Distribute(ctx context.Context, ds *dataset.Dataset, features []string, numClients int, optFns ...Option) (*Split, error) {
	o := applyOptions(optFns)

	if numClients < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNumClients, numClients)
	}

	m, err := ds.Select(features)
	if err != nil {
		return nil, translateError(err)
	}

	log := o.logger.WithClients(numClients).WithRows(m.Rows)

	k := o.k
	if k == 0 {
		k, _, err = findOptimalK(ctx, m, &o)
		if err != nil {
			return nil, err
		}
	} else if k < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	res, err := kmeans.Fit(ctx, m.Data, m.Dim, k, o.metric, o.maxIterations, o.seed)
	if err != nil {
		log.LogDistribute(ctx, k, err)
		return nil, err
	}

	assignment, err := partition.Assign(k, numClients)
	if err != nil {
		return nil, err
	}
	part := partition.Build(assignment, res.Assignments)

	if numClients > k {
		log.LogEmptyClients(ctx, k, numClients-k)
	}

	clients := make([]*dataset.Dataset, numClients)
	for client := 0; client < numClients; client++ {
		rows := part.Rows(client)
		if len(rows) == 0 {
			clients[client] = ds.Empty()
			continue
		}
		sub, err := ds.Subset(rows)
		if err != nil {
			return nil, err
		}
		clients[client] = sub
	}

	log.LogDistribute(ctx, k, nil)

	return &Split{
		K:         k,
		Seed:      o.seed,
		Features:  append([]string(nil), features...),
		Clients:   clients,
		Partition: part,
	}, nil
}
