package box

import "github.com/pkg/errors"

// Set is one image's worth of bounding boxes, held as three parallel
// sequences indexed consistently: Boxes[i], Classes[i] and Confidence[i]
// describe the same detection. Confidence is nil for ground-truth-only
// sets. A class of SentinelClass marks a padding slot rather than a real
// box.
//
// Sets are value snapshots. No operation mutates a Set in place; every
// transformation returns a new one, and any permutation or selection is
// applied identically to all three sequences.
type Set struct {
	Boxes      []Box
	Classes    []int
	Confidence []float32
}

// Len returns the number of rows in the set, padding included.
func (s Set) Len() int { return len(s.Boxes) }

// Validate checks the parallel-length invariant.
func (s Set) Validate() error {
	if len(s.Classes) != len(s.Boxes) {
		return errors.Wrapf(ErrShapeMismatch, "%d boxes vs %d classes", len(s.Boxes), len(s.Classes))
	}
	if s.Confidence != nil && len(s.Confidence) != len(s.Boxes) {
		return errors.Wrapf(ErrShapeMismatch, "%d boxes vs %d confidence scores", len(s.Boxes), len(s.Confidence))
	}
	return nil
}

// Areas returns the area of every box in the set, length preserving.
func (s Set) Areas() []float32 {
	areas := make([]float32, len(s.Boxes))
	for i, b := range s.Boxes {
		areas[i] = b.Area()
	}
	return areas
}

// StripSentinels returns the rows whose class is not SentinelClass, relative
// order preserved. It is the inverse of the padding applied by
// PadToRectangular.
func (s Set) StripSentinels() (Set, error) {
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	keep := make([]int, 0, len(s.Classes))
	for i, c := range s.Classes {
		if c != SentinelClass {
			keep = append(keep, i)
		}
	}
	return s.gather(keep), nil
}

// gather builds a new set from the given row indices, applied identically to
// all three parallel sequences.
func (s Set) gather(idx []int) Set {
	out := Set{
		Boxes:   make([]Box, len(idx)),
		Classes: make([]int, len(idx)),
	}
	if s.Confidence != nil {
		out.Confidence = make([]float32, len(idx))
	}
	for n, i := range idx {
		out.Boxes[n] = s.Boxes[i]
		out.Classes[n] = s.Classes[i]
		if s.Confidence != nil {
			out.Confidence[n] = s.Confidence[i]
		}
	}
	return out
}
