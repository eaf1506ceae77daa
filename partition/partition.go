// Package partition maps clusters to simulated federated-learning clients
// and tracks the resulting per-client row sets.
package partition

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Assignment maps each client id to its ordered, contiguous block of
// cluster ids. Blocks partition [0, k) exactly: every cluster belongs to
// one client, and clients beyond the cluster count hold empty blocks.
type Assignment [][]int

// Assign distributes k clusters across numClients clients in contiguous
// blocks by ascending cluster id. With k = q*numClients + r, the first r
// clients take q+1 clusters and the rest take q; when numClients > k the
// trailing clients receive no clusters at all.
func Assign(k, numClients int) (Assignment, error) {
	if k < 1 {
		return nil, fmt.Errorf("partition: k must be >= 1, got %d", k)
	}
	if numClients < 1 {
		return nil, fmt.Errorf("partition: numClients must be >= 1, got %d", numClients)
	}

	base := k / numClients
	extra := k % numClients

	out := make(Assignment, numClients)
	next := 0
	for client := 0; client < numClients; client++ {
		size := base
		if client < extra {
			size++
		}
		clusters := make([]int, size)
		for i := range clusters {
			clusters[i] = next
			next++
		}
		out[client] = clusters
	}
	return out, nil
}

// Clusters returns the cluster ids held by a client.
func (a Assignment) Clusters(client int) []int {
	return a[client]
}

// Partition is the per-client row membership derived from a cluster
// assignment over concrete rows.
type Partition struct {
	assignment Assignment
	rowSets    []*roaring.Bitmap
	numRows    int
}

// Build derives the per-client row sets: each row follows its cluster to
// the owning client.
func Build(assignment Assignment, clusterByRow []int) *Partition {
	owner := map[int]int{}
	for client, clusters := range assignment {
		for _, c := range clusters {
			owner[c] = client
		}
	}

	rowSets := make([]*roaring.Bitmap, len(assignment))
	for i := range rowSets {
		rowSets[i] = roaring.New()
	}
	for row, cluster := range clusterByRow {
		rowSets[owner[cluster]].Add(uint32(row))
	}

	return &Partition{
		assignment: assignment,
		rowSets:    rowSets,
		numRows:    len(clusterByRow),
	}
}

// NumClients returns the number of clients.
func (p *Partition) NumClients() int {
	return len(p.rowSets)
}

// Clusters returns the cluster ids held by a client.
func (p *Partition) Clusters(client int) []int {
	return p.assignment.Clusters(client)
}

// Rows returns a client's row indices in ascending order.
func (p *Partition) Rows(client int) []int {
	bm := p.rowSets[client]
	rows := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		rows = append(rows, int(it.Next()))
	}
	return rows
}

// RowCount returns the number of rows held by a client.
func (p *Partition) RowCount(client int) int {
	return int(p.rowSets[client].GetCardinality())
}

// Disjoint reports whether no row belongs to more than one client.
func (p *Partition) Disjoint() bool {
	for i := 0; i < len(p.rowSets); i++ {
		for j := i + 1; j < len(p.rowSets); j++ {
			if p.rowSets[i].Intersects(p.rowSets[j]) {
				return false
			}
		}
	}
	return true
}

// Total reports whether the union of all client row sets covers exactly
// the rows [0, n).
func (p *Partition) Total(n int) bool {
	union := roaring.New()
	for _, bm := range p.rowSets {
		union.Or(bm)
	}
	if union.GetCardinality() != uint64(n) {
		return false
	}
	if n == 0 {
		return true
	}
	return union.Minimum() == 0 && union.Maximum() == uint32(n-1)
}
