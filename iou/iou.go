// Package iou - Dense pairwise IoU lookup tables consumed by the greedy
// matcher.
package iou

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-boxeval/box"
)

// Matrix is a dense [numGroundTruth][numPredicted] IoU lookup table. Entry
// (i, j) is the IoU between ground-truth box i and predicted box j, in
// [0, 1]. The column count survives even with zero ground-truth rows, so a
// matcher can still report every prediction as unmatched.
type Matrix struct {
	gt, pred int
	vals     []float32 // row major
}

// NewMatrix builds a Matrix from one row per ground-truth box. numPredicted
// fixes the column count, which the rows alone cannot convey when there are
// no ground-truth boxes.
func NewMatrix(rows [][]float32, numPredicted int) (Matrix, error) {
	m := Matrix{gt: len(rows), pred: numPredicted, vals: make([]float32, 0, len(rows)*numPredicted)}
	for i, row := range rows {
		if len(row) != numPredicted {
			return Matrix{}, errors.Wrapf(box.ErrShapeMismatch, "row %d has %d entries, want %d", i, len(row), numPredicted)
		}
		m.vals = append(m.vals, row...)
	}
	return m, nil
}

// Compute builds the full O(N*M) lookup table between a ground-truth box
// list and a predicted box list.
func Compute(gt, pred []box.Box) Matrix {
	m := Matrix{gt: len(gt), pred: len(pred), vals: make([]float32, len(gt)*len(pred))}
	for i, g := range gt {
		for j, p := range pred {
			m.vals[i*m.pred+j] = g.IoU(p)
		}
	}
	return m
}

// Dims returns (numGroundTruth, numPredicted).
func (m Matrix) Dims() (int, int) { return m.gt, m.pred }

// At returns the IoU between ground-truth box i and predicted box j.
func (m Matrix) At(i, j int) float32 { return m.vals[i*m.pred+j] }
