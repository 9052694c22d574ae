package box

import (
	"sort"

	"github.com/pkg/errors"
)

// FilterByClass keeps only the rows whose class label equals class, order
// preserved. The result may be empty.
func (s Set) FilterByClass(class int) (Set, error) {
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	keep := make([]int, 0, len(s.Classes))
	for i, c := range s.Classes {
		if c == class {
			keep = append(keep, i)
		}
	}
	return s.gather(keep), nil
}

// FilterByAreaRange keeps the rows whose box area lies in [minArea, maxArea).
// The bound asymmetry is deliberate: adjacent area buckets partition a box
// population with no overlap and no gap between them.
func (s Set) FilterByAreaRange(minArea, maxArea float32) (Set, error) {
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	keep := make([]int, 0, len(s.Boxes))
	for i, b := range s.Boxes {
		if a := b.Area(); a >= minArea && a < maxArea {
			keep = append(keep, i)
		}
	}
	return s.gather(keep), nil
}

// SortByConfidence returns a new set with the rows permuted so confidence is
// non-increasing, the same permutation applied to all three sequences. The
// sort is stable, so rows with equal confidence keep their relative order
// and the result is deterministic. A set without a confidence sequence
// cannot be sorted and reports ErrMissingField.
func (s Set) SortByConfidence() (Set, error) {
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	if s.Confidence == nil {
		return Set{}, errors.Wrap(ErrMissingField, "sorting requires a confidence sequence")
	}
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.Confidence[idx[a]] > s.Confidence[idx[b]]
	})
	return s.gather(idx), nil
}
