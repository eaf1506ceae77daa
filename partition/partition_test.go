package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_EvenSplit(t *testing.T) {
	a, err := Assign(6, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, a.Clusters(0))
	assert.Equal(t, []int{2, 3}, a.Clusters(1))
	assert.Equal(t, []int{4, 5}, a.Clusters(2))
}

func TestAssign_Remainder(t *testing.T) {
	a, err := Assign(5, 3)
	require.NoError(t, err)

	// first k%numClients clients take one extra cluster
	assert.Equal(t, []int{0, 1}, a.Clusters(0))
	assert.Equal(t, []int{2, 3}, a.Clusters(1))
	assert.Equal(t, []int{4}, a.Clusters(2))
}

func TestAssign_MoreClientsThanClusters(t *testing.T) {
	a, err := Assign(2, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, a.Clusters(0))
	assert.Equal(t, []int{1}, a.Clusters(1))
	assert.Empty(t, a.Clusters(2))
	assert.Empty(t, a.Clusters(3))
}

func TestAssign_Exhaustive(t *testing.T) {
	for _, tc := range []struct{ k, clients int }{
		{1, 1}, {2, 2}, {7, 3}, {3, 7}, {10, 10}, {13, 4},
	} {
		a, err := Assign(tc.k, tc.clients)
		require.NoError(t, err)

		seen := map[int]int{}
		for client := range a {
			for _, c := range a.Clusters(client) {
				seen[c]++
			}
		}
		assert.Len(t, seen, tc.k, "k=%d clients=%d", tc.k, tc.clients)
		for c, count := range seen {
			assert.Equal(t, 1, count, "cluster %d (k=%d clients=%d)", c, tc.k, tc.clients)
		}
	}
}

func TestAssign_Invalid(t *testing.T) {
	_, err := Assign(0, 1)
	assert.Error(t, err)

	_, err = Assign(2, 0)
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	a, err := Assign(3, 2) // client 0: {0,1}, client 1: {2}
	require.NoError(t, err)

	clusterByRow := []int{0, 2, 1, 2, 0}
	p := Build(a, clusterByRow)

	assert.Equal(t, 2, p.NumClients())
	assert.Equal(t, []int{0, 2, 4}, p.Rows(0))
	assert.Equal(t, []int{1, 3}, p.Rows(1))
	assert.Equal(t, 3, p.RowCount(0))
	assert.Equal(t, 2, p.RowCount(1))
	assert.Equal(t, []int{0, 1}, p.Clusters(0))

	assert.True(t, p.Disjoint())
	assert.True(t, p.Total(5))
	assert.False(t, p.Total(6))
}

func TestBuild_EmptyClient(t *testing.T) {
	a, err := Assign(1, 3)
	require.NoError(t, err)

	p := Build(a, []int{0, 0})
	assert.Equal(t, 2, p.RowCount(0))
	assert.Equal(t, 0, p.RowCount(1))
	assert.Equal(t, 0, p.RowCount(2))
	assert.Empty(t, p.Rows(2))
	assert.True(t, p.Disjoint())
	assert.True(t, p.Total(2))
}
