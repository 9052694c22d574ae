// Package match - Greedy one-to-one assignment of predicted boxes to ground
// truth by IoU, the matching step behind COCO style precision and recall.
package match

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-boxeval/iou"
)

// Unmatched marks a predicted box no ground-truth box was assigned to.
const Unmatched = -1

// thresholdEpsilon keeps a threshold of exactly 1.0 reachable: without the
// clamp, requiring iou >= 1.0 can fail on float equality even for identical
// boxes. The exact value only needs to be slightly below one.
const thresholdEpsilon = 1e-6

// Greedy assigns ground-truth boxes to predicted boxes one to one.
//
// Predicted boxes are processed in column order, so callers should sort
// predictions by descending confidence first: the assignment is greedy, and
// whichever prediction is processed first claims its ground truth for good.
// Each prediction takes the still unclaimed ground-truth box with the
// highest IoU at or above threshold; on IoU ties the lowest ground-truth
// index wins. A claimed ground-truth box is unavailable to every later
// prediction.
//
// The result holds one entry per predicted box: the matched ground-truth
// index, or Unmatched. Every ground-truth index appears at most once.
// Given the same lookup table, threshold and processing order the result is
// deterministic.
func Greedy(ious iou.Matrix, threshold float32) []int {
	numTrue, numPred := ious.Dims()
	matches := make([]int, numPred)
	claimed := make([]bool, numTrue)

	for j := 0; j < numPred; j++ {
		best := math32.Min(threshold, 1-thresholdEpsilon)
		matches[j] = Unmatched
		for i := 0; i < numTrue; i++ {
			if claimed[i] {
				continue
			}
			v := ious.At(i, j)
			// Once a candidate is held, only a strictly better IoU displaces
			// it, so the lowest tied index wins.
			if v < best || (v == best && matches[j] != Unmatched) {
				continue
			}
			best = v
			matches[j] = i
		}
		if matches[j] != Unmatched {
			claimed[matches[j]] = true
		}
	}
	return matches
}

// GreedyBatch runs Greedy over one lookup table per image. Images share no
// state, so they are matched concurrently.
func GreedyBatch(ious []iou.Matrix, threshold float32) [][]int {
	out := make([][]int, len(ious))
	var wg sync.WaitGroup
	for i, m := range ious {
		i, m := i, m
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = Greedy(m, threshold)
		}()
	}
	wg.Wait()
	return out
}
