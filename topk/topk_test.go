// Package topk_test contains unit tests for best-k selection: correct
// membership and ordering for Largest and Smallest, short streams, duplicate
// cut-off weights, and the k validation.
package topk_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlqueue/pqueue"
	"github.com/katalvlaran/lvlqueue/topk"
)

// TestLargest_BadK verifies k < 1 is rejected.
func TestLargest_BadK(t *testing.T) {
	_, err := topk.Largest(0, []pqueue.Record{{Name: "a", Weight: 1}})
	assert.ErrorIs(t, err, topk.ErrBadK)

	_, err = topk.Smallest(-3, nil)
	assert.ErrorIs(t, err, topk.ErrBadK)
}

// TestLargest_Basic selects the top 3 of a small mixed stream.
func TestLargest_Basic(t *testing.T) {
	stream := []pqueue.Record{
		{Name: "low", Weight: 1},
		{Name: "mid", Weight: 5},
		{Name: "top", Weight: 9},
		{Name: "high", Weight: 7},
		{Name: "floor", Weight: 0},
	}

	out, err := topk.Largest(3, stream)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "top", out[0].Name)
	assert.Equal(t, "high", out[1].Name)
	assert.Equal(t, "mid", out[2].Name)
}

// TestLargest_ShortStream returns the whole stream when it has fewer than k
// records, still best-first.
func TestLargest_ShortStream(t *testing.T) {
	stream := []pqueue.Record{{Name: "a", Weight: 2}, {Name: "b", Weight: 8}}

	out, err := topk.Largest(10, stream)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(8), out[0].Weight)
	assert.Equal(t, int64(2), out[1].Weight)
}

// TestLargest_EmptyStream yields an empty selection without error.
func TestLargest_EmptyStream(t *testing.T) {
	out, err := topk.Largest(5, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestLargest_DuplicateCutoff allows any of the tied records at the cut-off
// weight, but the multiset of weights must be right.
func TestLargest_DuplicateCutoff(t *testing.T) {
	stream := []pqueue.Record{
		{Name: "a", Weight: 5},
		{Name: "b", Weight: 5},
		{Name: "c", Weight: 5},
		{Name: "d", Weight: 9},
	}

	out, err := topk.Largest(2, stream)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(9), out[0].Weight)
	assert.Equal(t, int64(5), out[1].Weight, "one of the tied records must fill the last slot")
}

// TestLargest_MatchesSort cross-checks against a reference sort on a random
// stream, comparing weight multisets (names may differ on ties).
func TestLargest_MatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n, k = 1000, 25
	stream := make([]pqueue.Record, n)
	for i := range stream {
		stream[i] = pqueue.Record{Name: "", Weight: int64(rng.Intn(200) - 100)}
	}

	out, err := topk.Largest(k, stream)
	require.NoError(t, err)
	require.Len(t, out, k)

	ref := make([]int64, n)
	for i, r := range stream {
		ref[i] = r.Weight
	}
	sort.Slice(ref, func(i, j int) bool { return ref[i] > ref[j] })

	for i := 0; i < k; i++ {
		assert.Equal(t, ref[i], out[i].Weight, "rank %d differs from reference sort", i)
	}
}

// TestSmallest_Basic selects the bottom 2 in ascending order.
func TestSmallest_Basic(t *testing.T) {
	stream := []pqueue.Record{
		{Name: "c", Weight: 30},
		{Name: "a", Weight: 10},
		{Name: "d", Weight: 40},
		{Name: "b", Weight: 20},
	}

	out, err := topk.Smallest(2, stream)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
}

// TestSmallest_ShortStream caps k at the stream length.
func TestSmallest_ShortStream(t *testing.T) {
	out, err := topk.Smallest(7, []pqueue.Record{{Name: "x", Weight: 3}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "x", out[0].Name)
}
