package iou

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-boxeval/box"
)

// Tensor renders the lookup table between gt and pred as a rank 2 float32
// dense tensor, for pipelines that post-process detections with
// gorgonia.org/tensor.
func Tensor(gt, pred []box.Box) *tensor.Dense {
	m := Compute(gt, pred)
	return tensor.New(tensor.WithShape(m.gt, m.pred), tensor.Of(tensor.Float32), tensor.WithBacking(m.vals))
}

// FromTensor converts a rank 2 IoU tensor into a Matrix. Float32 and
// Float64 tensors are accepted; anything else, including tensors of the
// wrong rank, is rejected.
func FromTensor(t *tensor.Dense) (Matrix, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return Matrix{}, errors.Wrapf(box.ErrInvalidShape, "iou tensor must be rank 2, got shape %v", shape)
	}
	m := Matrix{gt: shape[0], pred: shape[1], vals: make([]float32, shape[0]*shape[1])}
	for i := 0; i < m.gt; i++ {
		for j := 0; j < m.pred; j++ {
			v, err := t.At(i, j)
			if err != nil {
				return Matrix{}, errors.Wrapf(err, "iou tensor entry (%d, %d)", i, j)
			}
			switch x := v.(type) {
			case float32:
				m.vals[i*m.pred+j] = x
			case float64:
				m.vals[i*m.pred+j] = float32(x)
			default:
				return Matrix{}, errors.Wrapf(box.ErrInvalidShape, "iou tensor holds %T, want float32 or float64", v)
			}
		}
	}
	return m, nil
}
